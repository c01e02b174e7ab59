package verify

import "errors"

var (
	// ErrUnknownFunction is returned when a selection names no suite.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrUnknownFormat is returned for a report format other than json, yaml or toml.
	ErrUnknownFormat = errors.New("unknown report format")

	errFailFast = errors.New("stopped after first failing suite")
)
