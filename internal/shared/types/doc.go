// Package types holds the value types shared by the tool provider and its
// callers.
//
// Core Types:
//   - Service: provider definition with its tool listing
//   - Tool, Parameter: tool definitions and their parameters
//   - Context: caller information for an execution
//   - Result: outcome of a tool execution
//
// Example Usage:
//
//	svc := provider.Definition()
//	if tool, ok := svc.Tool("math.pow"); ok {
//	    fmt.Println(tool.Description)
//	}
package types
