package server

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/sixdot/dotserve/pkg/braille"
	"github.com/sixdot/dotserve/pkg/config"
	"github.com/sixdot/dotserve/pkg/suggest"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func testEngine(t *testing.T) *suggest.Engine {
	t.Helper()
	words := []string{"cat", "can", "catalog", "dog"}
	builder := suggest.NewBuilder(braille.Encode)
	completer := suggest.NewCompleter()
	for i, w := range words {
		builder.Insert(w)
		completer.AddWord(w, i)
	}
	return suggest.NewEngine(builder.Build(), completer)
}

func cellsFor(t *testing.T, word string) []string {
	t.Helper()
	patterns, err := braille.EncodeWord(word)
	if err != nil {
		t.Fatalf("encoding %q: %v", word, err)
	}
	cells := make([]string, len(patterns))
	for i, p := range patterns {
		cells[i] = string(p)
	}
	return cells
}

// runServer feeds the requests through a server over in-memory buffers
// and returns a decoder positioned after the readiness signal.
func runServer(t *testing.T, requests ...Request) *msgpack.Decoder {
	t.Helper()

	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		if err := enc.Encode(req); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}

	srv := NewServerIO(testEngine(t), config.DefaultConfig(), &in, &out)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	if err := dec.Decode(&ready); err != nil {
		t.Fatalf("decoding ready signal: %v", err)
	}
	if ready.Status != "ready" {
		t.Fatalf("ready status = %q", ready.Status)
	}
	return dec
}

func TestMatchRequest(t *testing.T) {
	dec := runServer(t, Request{ID: "m1", Op: "match", Cells: cellsFor(t, "cat"), Limit: 3})

	var resp Response
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID != "m1" {
		t.Errorf("response ID = %q, want m1", resp.ID)
	}
	if resp.Count == 0 || len(resp.Suggestions) != resp.Count {
		t.Fatalf("bad count: %+v", resp)
	}
	if resp.Suggestions[0].Word != "cat" || resp.Suggestions[0].Cost != 0 {
		t.Errorf("top suggestion = %+v, want exact match at cost 0", resp.Suggestions[0])
	}
	if len(resp.Suggestions) > 3 {
		t.Errorf("limit not applied: %d suggestions", len(resp.Suggestions))
	}
}

func TestMatchRequestBadCells(t *testing.T) {
	testCases := []struct {
		req  Request
		desc string
	}{
		{Request{ID: "e1", Op: "match"}, "missing cells"},
		{Request{ID: "e2", Op: "match", Cells: []string{"10"}}, "narrow cell"},
		{Request{ID: "e3", Op: "match", Cells: []string{"10010x"}}, "non bit character"},
	}

	for _, tc := range testCases {
		dec := runServer(t, tc.req)
		var errResp ErrorResponse
		if err := dec.Decode(&errResp); err != nil {
			t.Fatalf("%s: decoding error response: %v", tc.desc, err)
		}
		if errResp.ID != tc.req.ID || errResp.Code != 400 || errResp.Error == "" {
			t.Errorf("%s: got %+v", tc.desc, errResp)
		}
	}
}

func TestMatchRequestQueryTooLong(t *testing.T) {
	cfg := config.DefaultConfig()
	cells := make([]string, cfg.Server.MaxQueryCells+1)
	for i := range cells {
		cells[i] = "100000"
	}
	dec := runServer(t, Request{ID: "long", Op: "match", Cells: cells})

	var errResp ErrorResponse
	if err := dec.Decode(&errResp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if errResp.Code != 400 {
		t.Errorf("got %+v, want code 400", errResp)
	}
}

func TestCompleteRequest(t *testing.T) {
	dec := runServer(t, Request{ID: "c1", Op: "complete", Prefix: "ca", Limit: 10})

	var resp Response
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 3 {
		t.Fatalf("got %d completions, want 3: %+v", resp.Count, resp.Suggestions)
	}
	words := map[string]bool{}
	for _, s := range resp.Suggestions {
		words[s.Word] = true
	}
	for _, want := range []string{"cat", "can", "catalog"} {
		if !words[want] {
			t.Errorf("missing completion %q: %+v", want, resp.Suggestions)
		}
	}
}

func TestHealthAndUnknownOp(t *testing.T) {
	dec := runServer(t,
		Request{ID: "h1", Op: "health"},
		Request{ID: "u1", Op: "frobnicate"},
	)

	var status StatusResponse
	if err := dec.Decode(&status); err != nil {
		t.Fatalf("decoding health response: %v", err)
	}
	if status.ID != "h1" || status.Status != "ok" {
		t.Errorf("health response = %+v", status)
	}

	var errResp ErrorResponse
	if err := dec.Decode(&errResp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if errResp.ID != "u1" || errResp.Code != 400 {
		t.Errorf("unknown op response = %+v", errResp)
	}
}

func TestDefaultLimitApplied(t *testing.T) {
	// No limit in the request: the configured default caps the results.
	dec := runServer(t, Request{ID: "d1", Op: "match", Cells: cellsFor(t, "cat")})

	var resp Response
	if err := dec.Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count > config.DefaultConfig().Match.DefaultLimit {
		t.Errorf("got %d suggestions, want at most the default limit", resp.Count)
	}
}
