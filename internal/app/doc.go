// Package app wires application dependencies for the CLI and MCP server.
//
// It builds the concrete services from Config, exposing them via the Wire
// struct for commands and the tool dispatcher to use.
package app
