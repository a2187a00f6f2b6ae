package chartrie

import (
	"github.com/Zubayear/chartrie/alphabet"
	"github.com/Zubayear/chartrie/chartrieerr"
	"github.com/Zubayear/chartrie/internal/packed"
)

// Root is the index of every Trie's root node.
const Root uint32 = 0

// Trie is the finalized, immutable, packed trie produced by
// Builder.Finalize. Once built it holds no mutex: every field is
// read-only, so concurrent readers need no synchronization of their
// own (see the search package, which draws its scratch buffers from a
// sync.Pool rather than guarding the Trie itself).
type Trie struct {
	alphabet     *alphabet.Alphabet
	nodes        []node
	childIndices []uint32
	wordCount    int
}

// RawNode is the plain-field view of a finalized node, used by
// callers (currently the triocodec package) that need to reconstruct
// a Trie from a serialized form rather than a Builder.
type RawNode struct {
	FirstChildIndex uint32
	CharIndex       uint8
	ChildCount      uint8
	IsWordEnd       bool
	RemainingDepth  uint16
}

// NewFromParts reconstructs a Trie from raw nodes and a flat child
// index array, re-validating every invariant from the data model
// rather than trusting the caller. It is the landing point for
// triocodec.Decode.
func NewFromParts(a *alphabet.Alphabet, raw []RawNode, childIndices []uint32, wordCount int) (*Trie, error) {
	if len(raw) == 0 {
		return nil, chartrieerr.NewCorruptSerialization("empty node list")
	}
	if raw[0].CharIndex != 0 || raw[0].IsWordEnd {
		return nil, chartrieerr.NewCorruptSerialization("root node must have char_index 0 and not be a word end")
	}

	nodes := make([]node, len(raw))
	actualWordEnds := 0
	for i, r := range raw {
		if int(r.CharIndex) >= a.Len() {
			return nil, chartrieerr.NewCorruptSerialization("char_index out of alphabet range")
		}
		end := uint64(r.FirstChildIndex) + uint64(r.ChildCount)
		if end > uint64(len(childIndices)) {
			return nil, chartrieerr.NewCorruptSerialization("child_count overruns child index array")
		}
		for _, c := range childIndices[r.FirstChildIndex:end] {
			if int(c) >= len(raw) {
				return nil, chartrieerr.NewCorruptSerialization("dangling child index")
			}
		}
		if r.RemainingDepth > packed.MaxRemainingDepth {
			return nil, chartrieerr.NewCorruptSerialization("remaining_depth exceeds 15 bits")
		}
		if r.IsWordEnd {
			actualWordEnds++
		}
		nodes[i] = newNode(r.CharIndex, r.ChildCount, r.IsWordEnd, r.FirstChildIndex, r.RemainingDepth)
	}
	if actualWordEnds != wordCount {
		return nil, chartrieerr.NewCorruptSerialization("word count does not match is_word_end tally")
	}

	return &Trie{
		alphabet:     a,
		nodes:        nodes,
		childIndices: append([]uint32(nil), childIndices...),
		wordCount:    wordCount,
	}, nil
}

// Alphabet returns the trie's alphabet.
func (t *Trie) Alphabet() *alphabet.Alphabet {
	return t.alphabet
}

// Count returns the number of distinct words stored in the trie.
func (t *Trie) Count() int {
	return t.wordCount
}

// NumNodes returns the number of nodes in the finalized trie.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

// FirstChild returns node n's first_child_index field.
func (t *Trie) FirstChild(n uint32) uint32 {
	return t.nodes[n].firstChild
}

// ChildCount returns node n's child_count field.
func (t *Trie) ChildCount(n uint32) uint8 {
	return t.nodes[n].meta.ChildCount()
}

// CharIndex returns node n's char_index field.
func (t *Trie) CharIndex(n uint32) uint8 {
	return t.nodes[n].meta.CharIndex()
}

// IsWordEnd reports whether node n marks the end of a word.
func (t *Trie) IsWordEnd(n uint32) bool {
	return t.nodes[n].meta.IsWordEnd()
}

// RemainingDepth returns the maximum number of edges from node n to
// any descendant leaf.
func (t *Trie) RemainingDepth(n uint32) uint16 {
	return t.nodes[n].meta.RemainingDepth()
}

// Rune returns the codepoint node n's char_index maps to. It must not
// be called on the root node, whose char_index is the out-of-band
// sentinel described in the alphabet package.
func (t *Trie) Rune(n uint32) rune {
	return t.alphabet.Rune(t.CharIndex(n))
}

// Children returns the slice of node n's child indices. The returned
// slice is a read-only view into the trie's flat array and must not
// be mutated.
func (t *Trie) Children(n uint32) []uint32 {
	first := t.nodes[n].firstChild
	count := uint32(t.nodes[n].meta.ChildCount())
	return t.childIndices[first : first+count]
}

// ChildByChar returns the child of n whose char_index equals c, if any.
func (t *Trie) ChildByChar(n uint32, c byte) (uint32, bool) {
	for _, child := range t.Children(n) {
		if t.CharIndex(child) == c {
			return child, true
		}
	}
	return 0, false
}

// Contains reports whether word is stored in the trie.
func (t *Trie) Contains(word string) bool {
	if len(word) == 0 {
		return false
	}
	current := Root
	for _, c := range word {
		idx, ok := t.alphabet.IndexOf(c)
		if !ok {
			return false
		}
		next, ok := t.ChildByChar(current, idx)
		if !ok {
			return false
		}
		current = next
	}
	return t.IsWordEnd(current)
}
