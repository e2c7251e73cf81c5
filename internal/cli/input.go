// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sixdot/dotserve/internal/utils"
	"github.com/sixdot/dotserve/pkg/braille"
	"github.com/sixdot/dotserve/pkg/suggest"
)

// InputHandler processes user input from stdin, providing suggestions.
// A line of letters is encoded into cell patterns and run through the
// approximate matcher; a line of '0'/'1' groups is treated as raw cells.
type InputHandler struct {
	engine       suggest.ISuggester
	suggestLimit int
	noisy        bool
	rng          *rand.Rand
}

// NewInputHandler handles initialization of the InputHandler with basic parameters.
// With noisy set, one random dot per cell is flipped before searching,
// which exercises the approximate scoring the way slippy typing would.
func NewInputHandler(engine suggest.ISuggester, limit int, noisy bool) *InputHandler {
	return &InputHandler{
		engine:       engine,
		suggestLimit: limit,
		noisy:        noisy,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("dotserve CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word (or raw cells like '100100 100000 011110') and press Enter (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput turns a single line into a query and prints the ranked results.
func (h *InputHandler) handleInput(line string) {
	var patterns []braille.Pattern
	switch {
	case utils.IsPatternInput(line):
		var err error
		patterns, err = parseCells(line)
		if err != nil {
			log.Errorf("Bad cell input: %v", err)
			return
		}
	case utils.IsWordInput(line):
		if utils.IsRepetitive(line) {
			log.Warnf("Repetitive input '%s' rarely matches anything useful", line)
		}
		var err error
		patterns, err = braille.EncodeWord(strings.ToLower(line))
		if err != nil {
			log.Errorf("Cannot encode input: %v", err)
			return
		}
		if h.noisy {
			patterns = h.addNoise(patterns)
			log.Debug("Applied noise", "cells", patterns)
		}
	default:
		log.Errorf("Input must be letters or raw cells: %s", line)
		return
	}

	start := time.Now()
	suggestions := h.engine.Search(patterns, h.suggestLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for %d cells", elapsed, len(patterns))

	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for input: '%s'", line)
		return
	}

	log.Printf("Found %d suggestions for '%s':", len(suggestions), line)
	for i, s := range suggestions {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		log.Printf("%2d. %-40s (cost: %3d)", i+1, clWord, s.Cost)
	}
}

// addNoise flips one random dot in each cell.
func (h *InputHandler) addNoise(patterns []braille.Pattern) []braille.Pattern {
	noisy := make([]braille.Pattern, len(patterns))
	for i, p := range patterns {
		noisy[i] = braille.Flip(p, h.rng.Intn(braille.PatternWidth))
	}
	return noisy
}

// parseCells splits a raw input line into validated patterns.
func parseCells(line string) ([]braille.Pattern, error) {
	fields := strings.Fields(line)
	patterns := make([]braille.Pattern, 0, len(fields))
	for _, f := range fields {
		p, err := braille.ParsePattern(f)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}
