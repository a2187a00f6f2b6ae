/*
Package triocodec implements the finalized trie's one stable wire
format: a single JSON object with short, fixed field names, chosen so
a dump stays compact even across a large dictionary. Encode and Decode
are the only two exported operations; Decode fully re-validates the
structural invariants chartrie.NewFromParts already enforces rather
than trusting the bytes it is given.
*/
package triocodec

import (
	"encoding/json"
	"fmt"

	"github.com/Zubayear/chartrie/alphabet"
	"github.com/Zubayear/chartrie/chartrie"
	"github.com/Zubayear/chartrie/chartrieerr"
)

// wireNode mirrors one node object in the serialized array: f, i, c
// are always present, w is omitted when false, r is always present.
type wireNode struct {
	FirstChild uint32 `json:"f"`
	CharIndex  uint8  `json:"i"`
	ChildCount uint8  `json:"c"`
	WordEnd    *int   `json:"w,omitempty"`
	Remaining  uint16 `json:"r"`
}

// wireTrie mirrors the top-level serialized object.
type wireTrie struct {
	Codepoints   []rune     `json:"c"`
	ChildIndices []uint32   `json:"i"`
	Nodes        []wireNode `json:"n"`
	WordCount    int        `json:"w"`
}

var wordEndMarker = 1

// Encode renders t as the canonical JSON wire format.
func Encode(t *chartrie.Trie) ([]byte, error) {
	w := wireTrie{
		Codepoints:   t.Alphabet().Codepoints(),
		ChildIndices: append([]uint32(nil), flattenChildIndices(t)...),
		Nodes:        make([]wireNode, t.NumNodes()),
		WordCount:    t.Count(),
	}
	for i := 0; i < t.NumNodes(); i++ {
		n := uint32(i)
		wn := wireNode{
			FirstChild: t.FirstChild(n),
			CharIndex:  t.CharIndex(n),
			ChildCount: t.ChildCount(n),
			Remaining:  t.RemainingDepth(n),
		}
		if t.IsWordEnd(n) {
			wn.WordEnd = &wordEndMarker
		}
		w.Nodes[i] = wn
	}
	return json.Marshal(w)
}

// flattenChildIndices rebuilds the flat child-index array by reading
// each node's contiguous Children() slice in node order. Trie does not
// expose its backing array directly, so Encode reconstructs it from
// the same accessors any other caller would use.
func flattenChildIndices(t *chartrie.Trie) []uint32 {
	total := 0
	for i := 0; i < t.NumNodes(); i++ {
		total += len(t.Children(uint32(i)))
	}
	out := make([]uint32, 0, total)
	for i := 0; i < t.NumNodes(); i++ {
		out = append(out, t.Children(uint32(i))...)
	}
	return out
}

// Decode parses data as the canonical JSON wire format and
// reconstructs a finalized, locked Trie, re-validating every
// structural invariant along the way. It never returns a Trie built
// from data it could not fully verify.
func Decode(data []byte) (*chartrie.Trie, error) {
	var w wireTrie
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("triocodec: decoding wire format: %w: %v", chartrieerr.ErrCorruptSerialization, err)
	}
	if len(w.Codepoints) == 0 {
		return nil, chartrieerr.NewCorruptSerialization("empty alphabet codepoints")
	}

	a, err := alphabet.New(w.Codepoints)
	if err != nil {
		return nil, fmt.Errorf("triocodec: rebuilding alphabet: %w", err)
	}

	raw := make([]chartrie.RawNode, len(w.Nodes))
	for i, wn := range w.Nodes {
		raw[i] = chartrie.RawNode{
			FirstChildIndex: wn.FirstChild,
			CharIndex:       wn.CharIndex,
			ChildCount:      wn.ChildCount,
			IsWordEnd:       wn.WordEnd != nil && *wn.WordEnd != 0,
			RemainingDepth:  wn.Remaining,
		}
	}

	t, err := chartrie.NewFromParts(a, raw, w.ChildIndices, w.WordCount)
	if err != nil {
		return nil, fmt.Errorf("triocodec: rebuilding trie: %w", err)
	}
	return t, nil
}
