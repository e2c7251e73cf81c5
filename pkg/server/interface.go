/*
Package server implements msgpack IPC for braille pattern matching services.

The server provides a minimal interface over stdin/stdout using binary
msgpack encoding. Messages are processed synchronously with timing info
included in responses.

# IPC

Clients send one structured message per request and read one response.
Each message carries an ID field echoed back, an op selector, and the
fields that op needs.

A pattern match request carries the query cells in writing order:

	{"id": "req_001", "op": "match", "q": ["100100", "100000", "011110"], "l": 5}

The server responds with candidate words ranked ascending by cost:

	{"id": "req_001", "s": [{"w": "cat", "c": 0}, {"w": "cap", "c": 2}], "n": 2, "t": 145}

Prefix completion works on already-resolved characters:

	{"id": "req_002", "op": "complete", "p": "ca", "l": 5}

A health check returns {"id": ..., "status": "ok"}. Malformed patterns,
oversized queries and unknown ops produce an error response with a code,
never a dropped connection.
*/
package server

// Request is one incoming message.
type Request struct {
	ID     string   `msgpack:"id"`
	Op     string   `msgpack:"op"`
	Cells  []string `msgpack:"q,omitempty"` // pattern strings, "match" only
	Prefix string   `msgpack:"p,omitempty"` // "complete" only
	Limit  int      `msgpack:"l,omitempty"`
}

// ResponseSuggestion is one ranked candidate.
type ResponseSuggestion struct {
	Word string `msgpack:"w"`
	Cost int    `msgpack:"c"`
}

// Response answers match and complete requests.
type Response struct {
	ID          string               `msgpack:"id"`
	Suggestions []ResponseSuggestion `msgpack:"s"`
	Count       int                  `msgpack:"n"`
	TimeTaken   int64                `msgpack:"t"` // microseconds
}

// StatusResponse answers health checks and signals readiness on start.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
