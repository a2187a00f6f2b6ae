/*
Package chartrie implements the mutable trie builder and the
immutable, packed trie it finalizes into.

Construction follows the builder/finalized duality the specification
calls for: Builder owns a growable per-node child buffer suited to
cheap appends during Add, while Finalize flattens those buffers into
the flat, cache-friendly Trie that the search package walks. The two
representations are deliberately not unified; see Finalize's doc
comment for the pipeline that bridges them.
*/
package chartrie

import (
	"github.com/Zubayear/chartrie/alphabet"
	"github.com/Zubayear/chartrie/chartrieerr"
)

// builderNode is a single node of the mutable, unfinalized trie. Its
// children live in an ordinary growable slice rather than a flat
// array, since the builder only ever appends to it and needs cheap
// linear scans while char sets are small (child_count <= alphabet size).
type builderNode struct {
	charIndex uint8
	isWordEnd bool
	children  []uint32 // indices into Builder.nodes
}

// Builder accumulates words into a mutable trie. It is not safe for
// concurrent mutation by design: the specification treats the builder
// as single-writer, then frozen by Finalize, so Builder guards only
// the locked/unlocked transition rather than taking a mutex around
// every Add.
type Builder struct {
	alphabet  *alphabet.Alphabet
	nodes     []builderNode
	wordCount int
	locked    bool
	finalized *Trie
}

// NewBuilder returns a Builder over the given alphabet, with a root
// node already in place at index 0.
func NewBuilder(a *alphabet.Alphabet) *Builder {
	return &Builder{
		alphabet: a,
		nodes: []builderNode{
			{charIndex: 0, isWordEnd: false},
		},
	}
}

// Add inserts word into the trie, creating any missing nodes along
// the way and marking the final node as a word end.
//
// Returns ErrEmptyInput if word is empty, ErrLocked if the builder has
// already been finalized, or an UnknownCharacterError if word contains
// a codepoint outside the builder's alphabet.
func (b *Builder) Add(word string) error {
	if b.locked {
		return chartrieerr.ErrLocked
	}
	if len(word) == 0 {
		return chartrieerr.ErrEmptyInput
	}

	current := uint32(0)
	for _, c := range word {
		idx, ok := b.alphabet.IndexOf(c)
		if !ok {
			return chartrieerr.NewUnknownCharacter(c)
		}
		current = b.childFor(current, idx)
	}

	n := &b.nodes[current]
	if !n.isWordEnd {
		n.isWordEnd = true
		b.wordCount++
	}
	return nil
}

// childFor returns the index of parent's child with the given
// alphabet index, creating it if it doesn't already exist. It scans
// parent's child buffer linearly, which the specification calls out
// as acceptable because child_count never exceeds the alphabet size.
func (b *Builder) childFor(parent uint32, charIndex byte) uint32 {
	for _, childIdx := range b.nodes[parent].children {
		if b.nodes[childIdx].charIndex == charIndex {
			return childIdx
		}
	}
	newIdx := uint32(len(b.nodes))
	b.nodes = append(b.nodes, builderNode{charIndex: charIndex})
	b.nodes[parent].children = append(b.nodes[parent].children, newIdx)
	return newIdx
}

// AddRange adds each word in words, stopping and returning the first
// error encountered (if any); words added before the failing one stay
// in the trie.
func (b *Builder) AddRange(words []string) error {
	for _, w := range words {
		if err := b.Add(w); err != nil {
			return err
		}
	}
	return nil
}

// Locked reports whether the builder has been finalized.
func (b *Builder) Locked() bool {
	return b.locked
}
