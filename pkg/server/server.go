package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/sixdot/dotserve/pkg/braille"
	"github.com/sixdot/dotserve/pkg/config"
	"github.com/sixdot/dotserve/pkg/suggest"
)

// Server handles the IPC for pattern match and completion requests.
type Server struct {
	engine suggest.ISuggester
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer creates a server speaking msgpack over stdin/stdout.
func NewServer(engine suggest.ISuggester, cfg *config.Config) *Server {
	return NewServerIO(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over custom streams, mainly for tests.
func NewServerIO(engine suggest.ISuggester, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine: engine,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Start begins the synchronous request loop. It returns nil when the
// client closes its end.
func (s *Server) Start() error {
	log.Debug("Starting server")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case "match":
		s.handleMatch(req)
	case "complete":
		s.handleComplete(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown op: %q", req.Op), 400)
	}
}

// handleMatch validates the query cells, runs the approximate search
// and answers with ranked candidates.
func (s *Server) handleMatch(req Request) {
	if len(req.Cells) == 0 {
		s.sendError(req.ID, "missing 'q' cells", 400)
		log.Debug("Match request without cells")
		return
	}
	if len(req.Cells) > s.cfg.Server.MaxQueryCells {
		s.sendError(req.ID, fmt.Sprintf("query exceeds maximum of %d cells", s.cfg.Server.MaxQueryCells), 400)
		log.Debug("Match request too long", "cells", len(req.Cells))
		return
	}

	patterns := make([]braille.Pattern, 0, len(req.Cells))
	for _, cell := range req.Cells {
		p, err := braille.ParsePattern(cell)
		if err != nil {
			s.sendError(req.ID, err.Error(), 400)
			log.Debugf("Bad cell in request: %v", err)
			return
		}
		patterns = append(patterns, p)
	}

	limit := s.clampLimit(req.Limit)

	start := time.Now()
	suggestions := s.engine.Search(patterns, limit)
	elapsed := time.Since(start)

	s.send(buildResponse(req.ID, suggestions, elapsed))
}

// handleComplete answers a plain prefix completion request.
func (s *Server) handleComplete(req Request) {
	if req.Prefix == "" {
		s.sendError(req.ID, "missing 'p' prefix", 400)
		log.Debug("Completion request without prefix")
		return
	}
	if len(req.Prefix) < s.cfg.Server.MinPrefix {
		s.sendError(req.ID, fmt.Sprintf("prefix must be at least %d characters", s.cfg.Server.MinPrefix), 400)
		return
	}
	if len(req.Prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(req.ID, fmt.Sprintf("prefix exceeds maximum length of %d characters", s.cfg.Server.MaxPrefix), 400)
		return
	}

	limit := s.clampLimit(req.Limit)

	start := time.Now()
	suggestions := s.engine.Complete(req.Prefix, limit)
	elapsed := time.Since(start)

	s.send(buildResponse(req.ID, suggestions, elapsed))
}

// clampLimit applies the configured default and ceiling.
func (s *Server) clampLimit(limit int) int {
	if limit < 1 {
		return s.cfg.Match.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		return s.cfg.Server.MaxLimit
	}
	return limit
}

func buildResponse(id string, suggestions []suggest.Suggestion, elapsed time.Duration) Response {
	out := make([]ResponseSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = ResponseSuggestion{Word: sg.Word, Cost: sg.Cost}
	}
	return Response{
		ID:          id,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   elapsed.Microseconds(),
	}
}

// send encodes one response onto the wire.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
