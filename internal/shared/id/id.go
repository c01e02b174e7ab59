// Package id generates identifiers for verification runs.
//
// Run IDs are ULIDs carrying a "run_" prefix so reports and log lines
// sort by start time and stay readable:
//
//	run_01JAB3C4D5E6F7G8H9J0KMNPQR
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunID identifies one verification run
type RunID string

// RunPrefix tags run identifiers
const RunPrefix = "run"

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
	now       func() time.Time
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the process-wide generator
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand
func NewGenerator() *Generator {
	return NewGeneratorWithEntropy(rand.Reader)
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// A monotonic reader keeps IDs from the same millisecond ordered.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{
		entropy: ulid.Monotonic(entropy, 0),
		now:     time.Now,
	}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewRun generates a run ID from this generator
func (g *Generator) NewRun() RunID {
	return RunID(g.GenerateWithPrefix(RunPrefix))
}

func (id RunID) String() string { return string(id) }

// ULID strips the prefix and parses the remainder
func (id RunID) ULID() (ulid.ULID, error) {
	raw, ok := strings.CutPrefix(string(id), RunPrefix+"_")
	if !ok {
		return ulid.ULID{}, fmt.Errorf("run id %q: missing %s_ prefix", id, RunPrefix)
	}
	return Parse(raw)
}

// Started reports when the run ID was minted
func (id RunID) Started() (time.Time, error) {
	u, err := id.ULID()
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()), nil
}

// IsValid checks if an ID string is a valid ULID
func IsValid(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}

// Parse parses a ULID string
func Parse(id string) (ulid.ULID, error) {
	u, err := ulid.Parse(id)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("parse ulid %q: %w", id, err)
	}
	return u, nil
}
