// Package server exposes the trace engine over HTTP.
//
// Routes (under /api):
//
//	GET /sort/:algorithm
//	GET /tree/traversal/:traversal
//	GET /recursion/:algorithm
//	GET /graph/:algorithm
//	GET /algorithms
//	GET /stream/:family/:algorithm   (websocket)
//
// plus GET /healthz and GET /metrics (Prometheus).
//
// A trace response is {"steps": [...], "complexity": {...}}. Every failure
// is a 400 with {"error": "...", "code": "..."} where code is one of
// UNKNOWN_ALGORITHM, INVALID_INPUT or LIMIT_EXCEEDED. Query parameters and
// their defaults are described in package params.
//
// Every response carries an X-Request-ID header, taken from the request
// when present and generated otherwise; request logs carry the same ID.
package server
