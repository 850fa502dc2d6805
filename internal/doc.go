// Package internal contains the core implementation packages for robogen.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the robogen CLI tool and MCP server.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - sanitize: input validation and Robot Framework escaping at the trust boundary
//   - dialect: the closed selector dialect catalog and role resolution
//   - artifact: artifact kinds and the generated-artifact value type
//   - generator: template skeletons and deterministic artifact rendering
//   - validator: line-oriented static syntax checking with structured diagnostics
//   - tools: the callable tool table shared by the CLI and the MCP transport
//   - mcp: JSON-RPC 2.0 stdio transport for the tool table
//   - errors: structured error types with stable machine-readable codes
//   - logging: structured logging with credential redaction
//   - version: build version information
//
// # Design Principles
//
// Generated artifact text is built only from validated values: every
// caller-supplied string crosses the sanitize package before it reaches a
// template, and templates substitute by name, never by concatenation.
// The sanitize.Value type is constructible only through its validators, so
// a raw string cannot reach a template by accident.
//
// Core packages never read configuration. The cmd layer resolves flags,
// environment variables, and the config file into plain option structs and
// passes them down.
//
// Diagnostics, not failures: malformed Robot Framework text is the
// validator's expected input and yields a structured report, never an error.
//
// For detailed documentation, see the individual package documentation.
package internal
