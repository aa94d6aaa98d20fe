// Package commands defines the senscode CLI and wires dependencies for subcommands.
//
// Commands
//
//   - morse encode|decode|timing   Morse codec and keying schedules
//   - braille encode|decode        Braille codec
//   - braille punchcard|grid       physical pattern renderings
//   - transcode                    convert between encodings via text
//   - fingerprint                  audit digest of an encoded artifact
//   - serve                        expose the codecs as MCP tools on stdio
//
// # Implementation
//
// The root command builds the dependency graph (codecs are pure; only the
// transcoder and audit services are wired) before any subcommand runs.
// Structured results (timing schedules, binary grids) print as JSON;
// everything else prints verbatim so output can be piped onward.
package commands
