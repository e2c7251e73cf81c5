package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Completer answers plain prefix lookups over the same dictionary the
// Matcher is built from. It is the fast path for input that already
// resolved to characters; noisy cell sequences go through the Matcher.
type Completer struct {
	trie  *patricia.Trie
	words int
}

// NewCompleter creates an empty prefix completer.
func NewCompleter() *Completer {
	return &Completer{trie: patricia.NewTrie()}
}

// AddWord records one dictionary word with its position in load order.
// Duplicates are dropped.
func (c *Completer) AddWord(word string, order int) {
	w := strings.ToLower(word)
	if c.trie.Insert(patricia.Prefix(w), order) {
		c.words++
	}
}

// Len returns the number of distinct words added.
func (c *Completer) Len() int {
	return c.words
}

// ranked pairs a suggestion with its dictionary load order for tie breaks.
type ranked struct {
	Suggestion
	order int
}

// Complete returns up to limit words extending prefix, shortest
// extension first; equal lengths keep dictionary load order. The exact
// prefix itself is not echoed back.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if prefix == "" || limit <= 0 {
		return nil
	}
	lower := strings.ToLower(prefix)

	var found []ranked
	err := c.trie.VisitSubtree(patricia.Prefix(lower), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lower {
			return nil
		}

		order := 0
		switch v := item.(type) {
		case int:
			order = v
		case int32:
			order = int(v)
		case uint32:
			order = int(v)
		default:
			log.Errorf("Unknown item type: %T for word %s", item, p)
		}

		found = append(found, ranked{
			Suggestion: Suggestion{Word: word, Cost: len(word) - len(lower)},
			order:      order,
		})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].Cost != found[j].Cost {
			return found[i].Cost < found[j].Cost
		}
		return found[i].order < found[j].order
	})

	if len(found) > limit {
		found = found[:limit]
	}
	out := make([]Suggestion, len(found))
	for i := range found {
		out[i] = found[i].Suggestion
	}
	return out
}
