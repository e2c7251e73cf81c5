package suggest

// DefaultDeletionCost is the fixed charge for inserting or deleting one
// cell in the distance recurrence. A substitution costs at most
// braille.PatternWidth, so a deletion is never cheaper than flipping
// half the dots.
const DefaultDeletionCost = 3

// DefaultLimit is the suggestion count used when a caller passes none.
const DefaultLimit = 5

// edge links a node to a child by its symbol. Edges keep insertion
// order, which is what makes equal-cost results rank in dictionary order.
type edge struct {
	sym  rune
	node *node
}

// node is one vertex of the dictionary trie. A parent owns its children
// exclusively; nodes are created on insert and never removed.
type node struct {
	edges    []edge
	terminal bool
}

func (n *node) child(sym rune) *node {
	for i := range n.edges {
		if n.edges[i].sym == sym {
			return n.edges[i].node
		}
	}
	return nil
}

// Builder accumulates dictionary words and finalizes them into an
// immutable Matcher. Splitting the phases keeps interior mutation away
// from traversals without any locking.
type Builder struct {
	root         *node
	codec        Codec
	deletionCost int
	words        int
}

// NewBuilder creates an empty builder. The codec is consulted during
// Search, not Insert, so a word may carry symbols the codec does not
// cover; such words end up in the trie but never in results.
func NewBuilder(codec Codec) *Builder {
	return &Builder{
		root:         &node{},
		codec:        codec,
		deletionCost: DefaultDeletionCost,
	}
}

// SetDeletionCost overrides the insertion/deletion charge. Values below
// 1 are ignored.
func (b *Builder) SetDeletionCost(cost int) {
	if cost >= 1 {
		b.deletionCost = cost
	}
}

// Insert adds one word. Inserting the same word twice leaves the trie
// observably unchanged; the empty word is a no-op.
func (b *Builder) Insert(word string) {
	if word == "" {
		return
	}
	cur := b.root
	for _, sym := range word {
		next := cur.child(sym)
		if next == nil {
			next = &node{}
			cur.edges = append(cur.edges, edge{sym: sym, node: next})
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		b.words++
	}
}

// Build hands the trie off to a Matcher and resets the builder, so a
// later Insert can never mutate a matcher already answering queries.
func (b *Builder) Build() *Matcher {
	m := &Matcher{
		root:         b.root,
		codec:        b.codec,
		deletionCost: b.deletionCost,
		words:        b.words,
	}
	b.root = &node{}
	b.words = 0
	return m
}

// Matcher answers approximate pattern queries over a frozen dictionary
// trie. It holds no per-query state and is safe for concurrent reads.
type Matcher struct {
	root         *node
	codec        Codec
	deletionCost int
	words        int
}

// Len returns the number of distinct words in the trie.
func (m *Matcher) Len() int {
	return m.words
}

// DeletionCost returns the configured insertion/deletion charge.
func (m *Matcher) DeletionCost() int {
	return m.deletionCost
}
