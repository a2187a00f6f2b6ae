package chartrie

import "github.com/Zubayear/chartrie/internal/packed"

// node is a finalized, packed trie node: an 8-byte pair of the
// first-child offset into the flat child-index array and a meta word
// carrying char_index, child_count, is_word_end and remaining_depth.
type node struct {
	firstChild uint32
	meta       packed.Meta
}

func newNode(charIndex, childCount uint8, isWordEnd bool, firstChild uint32, remainingDepth uint16) node {
	return node{
		firstChild: firstChild,
		meta:       packed.New(charIndex, childCount, isWordEnd, remainingDepth),
	}
}
