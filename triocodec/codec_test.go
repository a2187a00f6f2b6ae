package triocodec

import (
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/Zubayear/chartrie/alphabet"
	"github.com/Zubayear/chartrie/chartrie"
	"github.com/Zubayear/chartrie/chartrieerr"
)

func buildTrie(t *testing.T, words []string) *chartrie.Trie {
	t.Helper()
	seen := map[rune]bool{alphabet.RootSentinel: true}
	cps := []rune{alphabet.RootSentinel}
	for _, w := range words {
		for _, r := range w {
			if !seen[r] {
				seen[r] = true
				cps = append(cps, r)
			}
		}
	}
	sort.Slice(cps[1:], func(i, j int) bool { return cps[1:][i] < cps[1:][j] })

	a, err := alphabet.New(cps)
	if err != nil {
		t.Fatalf("alphabet.New: %v", err)
	}
	b := chartrie.NewBuilder(a)
	if err := b.AddRange(words); err != nil {
		t.Fatalf("AddRange: %v", err)
	}
	tr, err := b.Finalize(true, true)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return tr
}

var roundTripWords = []string{"woord", "woorden", "zijn", "wapens", "logos", "lustoord"}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tr := buildTrie(t, roundTripWords)

	data, err := Encode(tr)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.Count() != tr.Count() {
		t.Errorf("Count() = %d, want %d", decoded.Count(), tr.Count())
	}
	if decoded.NumNodes() != tr.NumNodes() {
		t.Errorf("NumNodes() = %d, want %d", decoded.NumNodes(), tr.NumNodes())
	}
	for _, w := range roundTripWords {
		if !decoded.Contains(w) {
			t.Errorf("decoded trie lost word %q", w)
		}
	}
	if decoded.Contains("notinthere") {
		t.Errorf("decoded trie gained a word it should not contain")
	}
}

func TestEncodeOmitsWordEndWhenFalse(t *testing.T) {
	tr := buildTrie(t, []string{"ab"})
	data, err := Encode(tr)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	nodes, ok := raw["n"].([]any)
	if !ok {
		t.Fatalf("n field missing or wrong shape: %v", raw["n"])
	}
	if len(nodes) != tr.NumNodes() {
		t.Fatalf("encoded %d nodes, want %d", len(nodes), tr.NumNodes())
	}
	for i, n := range nodes {
		obj, ok := n.(map[string]any)
		if !ok {
			t.Fatalf("node is not an object: %v", n)
		}
		_, hasW := obj["w"]
		want := tr.IsWordEnd(uint32(i))
		if hasW != want {
			t.Errorf("node %d: has \"w\" key = %v, want %v (IsWordEnd = %v)", i, hasW, want, want)
		}
	}
}

func TestEncodeFieldNamesMatchWireFormat(t *testing.T) {
	tr := buildTrie(t, []string{"a"})
	data, err := Encode(tr)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	for _, key := range []string{"c", "i", "n", "w"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("wire object missing top-level field %q", key)
		}
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, err := Decode([]byte("not json")); err == nil {
		t.Fatalf("Decode with malformed JSON should fail")
	}
}

func TestDecodeRejectsEmptyAlphabet(t *testing.T) {
	_, err := Decode([]byte(`{"c":[],"i":[],"n":[{"f":0,"i":0,"c":0,"r":0}],"w":0}`))
	if err == nil {
		t.Fatalf("Decode with empty alphabet should fail")
	}
}

func TestDecodeRejectsDanglingChildIndex(t *testing.T) {
	// root claims one child at index 0, but the child index array
	// points past the single node in the list.
	data := []byte(`{"c":[97],"i":[5],"n":[{"f":0,"i":0,"c":1,"r":1}],"w":0}`)
	_, err := Decode(data)
	if err == nil {
		t.Fatalf("Decode with dangling child index should fail")
	}
	if !errors.Is(err, chartrieerr.ErrCorruptSerialization) {
		t.Errorf("Decode error = %v, want wrapping ErrCorruptSerialization", err)
	}
}
