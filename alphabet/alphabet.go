/*
Package alphabet provides the fixed, ordered set of codepoints a char
trie can store, along with a dense codepoint-to-index lookup table.

An Alphabet is built once, from a sorted and deduplicated slice of
runes supplied by the caller (see the dictionary package for the
factory that scans a seed dictionary to build one). Index 0 is
reserved for the trie's root node and must never be assigned to a
rune that can appear in an actual word; RootSentinel documents the
conventional choice.

Lookup is O(1): codepoints within the Basic Multilingual Plane index
directly into a 64 KiB dense table, matching the ~64 KiB budget the
specification allows for this structure. Codepoints above the BMP are
rare in real dictionaries but are still supported, via a small
overflow map so IndexOf never has to reject a valid Unicode input on
table-size grounds alone.
*/
package alphabet

import (
	"github.com/Zubayear/chartrie/chartrieerr"
)

// RootSentinel is the codepoint reserved for C[0], the alphabet slot a
// trie's root node carries as its (otherwise meaningless) char index.
// It is a control character that can never appear in a UTF-8 text
// dictionary line, so a seed-scanning factory can always safely
// prepend it without colliding with real input.
const RootSentinel rune = '\x00'

// MaxSize is the largest number of distinct codepoints an Alphabet may hold.
// char_index and child_count are packed into 8 bits each (see internal/packed).
const MaxSize = 255

// unassigned is the CharMap sentinel for codepoints outside the alphabet.
const unassigned = 0xFF

// Alphabet is the fixed, ordered set of codepoints a trie accepts.
type Alphabet struct {
	codepoints []rune
	dense      [1 << 16]byte // codepoint -> index, for codepoints < 1<<16
	overflow   map[rune]byte // codepoint -> index, for codepoints >= 1<<16
}

// New builds an Alphabet from codepoints. The caller must supply them
// sorted and deduplicated; New does not sort or dedupe on the caller's
// behalf since callers that already insert in alphabet order can skip
// that work (see the finalizer's sort=false fast path).
//
// Returns ErrEmptyAlphabet if codepoints is empty, or ErrAlphabetTooLarge
// if it holds more than MaxSize entries.
func New(codepoints []rune) (*Alphabet, error) {
	if len(codepoints) == 0 {
		return nil, chartrieerr.ErrEmptyAlphabet
	}
	if len(codepoints) > MaxSize {
		return nil, chartrieerr.ErrAlphabetTooLarge
	}

	a := &Alphabet{
		codepoints: append([]rune(nil), codepoints...),
	}
	for i := range a.dense {
		a.dense[i] = unassigned
	}
	for i, c := range a.codepoints {
		idx := byte(i)
		if c >= 0 && int(c) < len(a.dense) {
			a.dense[c] = idx
		} else {
			if a.overflow == nil {
				a.overflow = make(map[rune]byte)
			}
			a.overflow[c] = idx
		}
	}
	return a, nil
}

// IndexOf returns the alphabet index of c and true, or (0, false) if c
// is not a member of the alphabet.
func (a *Alphabet) IndexOf(c rune) (byte, bool) {
	if c >= 0 && int(c) < len(a.dense) {
		idx := a.dense[c]
		return idx, idx != unassigned
	}
	idx, ok := a.overflow[c]
	return idx, ok
}

// Rune returns the codepoint stored at alphabet index i.
func (a *Alphabet) Rune(i byte) rune {
	return a.codepoints[i]
}

// Len returns the number of distinct codepoints in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.codepoints)
}

// Codepoints returns the alphabet's codepoints in index order. The
// returned slice must not be mutated by the caller.
func (a *Alphabet) Codepoints() []rune {
	return a.codepoints
}
