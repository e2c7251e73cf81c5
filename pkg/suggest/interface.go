// Package suggest is the core, providing the trie construction and the
// approximate pattern traversals that score and rank dictionary words.
package suggest

import "github.com/sixdot/dotserve/pkg/braille"

// Codec resolves a dictionary symbol to its cell pattern at traversal
// time. The second return is false for symbols with no defined pattern;
// the matcher skips everything below such an edge.
type Codec func(r rune) (braille.Pattern, bool)

// Suggestion is one scored candidate word. Lower cost is a closer match.
type Suggestion struct {
	Word string
	Cost int
}

// ISuggester defines the operations the server and CLI program against.
type ISuggester interface {
	// Search returns words approximately matching a cell pattern
	// sequence, ascending by cost.
	Search(patterns []braille.Pattern, limit int) []Suggestion

	// Complete returns words extending a plain character prefix.
	Complete(prefix string, limit int) []Suggestion

	// Stats returns counters about the loaded dictionary.
	Stats() map[string]int
}

// Engine bundles the pattern matcher and the prefix completer built
// from one dictionary.
type Engine struct {
	matcher   *Matcher
	completer *Completer
}

// NewEngine wraps a finalized matcher and completer.
func NewEngine(matcher *Matcher, completer *Completer) *Engine {
	return &Engine{matcher: matcher, completer: completer}
}

func (e *Engine) Search(patterns []braille.Pattern, limit int) []Suggestion {
	return e.matcher.Search(patterns, limit)
}

func (e *Engine) Complete(prefix string, limit int) []Suggestion {
	return e.completer.Complete(prefix, limit)
}

func (e *Engine) Stats() map[string]int {
	return map[string]int{
		"matchWords":  e.matcher.Len(),
		"prefixWords": e.completer.Len(),
	}
}
