// Package input parses the textual request payloads accepted by the HTTP
// and CLI adapters into the typed values the trace engine consumes.
//
// Formats
//
//   - Ints:       "64,34,25"          comma-separated integers; "" is empty.
//   - LevelOrder: "1,2,null,3"        level-order tree; "null" marks absence.
//   - Edges:      "0-1,0-2"           undirected u-v pairs; "" is no edges.
//   - Int:        "5"                 a single integer.
//
// Tokens are whitespace-trimmed. Every failure wraps ErrInvalidInput and
// names the offending token, so callers branch with errors.Is and show
// the message as-is.
package input
