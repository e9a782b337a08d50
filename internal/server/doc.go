// Package server implements the MCP (Model Context Protocol) surface of the
// detector.
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load an image file and get metadata
//   - extract_text: Preprocess an image file and OCR it
//   - detect_dark_patterns: Full pipeline on an image file
//   - detect_text_patterns: Pattern matching on supplied text
//   - capture_and_detect: Full pipeline on a fresh screenshot
//
// Images loaded from disk are cached by path for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with code
// -32000 and the Go error string in data. Missing or malformed arguments use
// -32602; unknown methods use -32601.
package server
