package suggest

import (
	"sort"

	"github.com/sixdot/dotserve/pkg/braille"
)

// Search returns up to limit dictionary words ranked ascending by edit
// cost against the query cell sequence. Costs: deleting a dictionary
// symbol or inserting a query cell charges the deletion cost, a
// substitution charges the Hamming distance between the two patterns.
//
// The traversal visits the whole trie with one distance row per path
// and no cost bound. That is deliberate: dictionaries here are small,
// and an exhaustive walk keeps the scoring exact.
//
// An empty query or a non-positive limit returns no results.
func (m *Matcher) Search(patterns []braille.Pattern, limit int) []Suggestion {
	if len(patterns) == 0 || limit <= 0 {
		return nil
	}

	n := len(patterns)
	row := make([]int, n+1)
	for j := range row {
		// Matching the empty dictionary prefix means inserting
		// every query cell seen so far.
		row[j] = j * m.deletionCost
	}

	var found []Suggestion
	m.walk(m.root, nil, row, patterns, &found)

	// Stable: equal costs keep discovery order, which follows
	// dictionary insertion order.
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Cost < found[j].Cost
	})
	if len(found) > limit {
		found = found[:limit]
	}
	return found
}

// walk carries the distance row for the dictionary prefix ending at cur.
// row[j] is the minimal cost of turning that prefix into the first j
// query cells.
func (m *Matcher) walk(cur *node, word []rune, row []int, patterns []braille.Pattern, out *[]Suggestion) {
	n := len(patterns)

	if cur.terminal {
		// Score against every query prefix, paying for the
		// unmatched suffix as insertions. A fully typed word can
		// therefore win before the user finishes the query.
		best := row[0] + n*m.deletionCost
		for j := 1; j <= n; j++ {
			if c := row[j] + (n-j)*m.deletionCost; c < best {
				best = c
			}
		}
		*out = append(*out, Suggestion{Word: string(word), Cost: best})
	}

	for _, e := range cur.edges {
		pat, ok := m.codec(e.sym)
		if !ok {
			// No pattern for this symbol: nothing below it can be
			// scored, so the whole subtree drops out of the results.
			continue
		}
		next := make([]int, n+1)
		next[0] = row[0] + m.deletionCost
		for j := 1; j <= n; j++ {
			c := row[j] + m.deletionCost // delete the dictionary symbol
			if v := next[j-1] + m.deletionCost; v < c { // insert the query cell
				c = v
			}
			if v := row[j-1] + braille.Hamming(pat, patterns[j-1]); v < c { // substitute
				c = v
			}
			next[j] = c
		}
		m.walk(e.node, append(word, e.sym), next, patterns, out)
	}
}
