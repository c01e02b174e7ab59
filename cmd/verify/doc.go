// Command verify runs the custommath verification suites and writes a report
// to stdout. Logs go to stderr.
//
// Configuration is read from the environment:
//
//	VERIFY_FUNCTIONS=sqrt,pow VERIFY_FORMAT=yaml verify
//
// The exit status is 0 when every case and tool probe passed, 1 when any
// failed, and 2 when the run could not complete.
package main
