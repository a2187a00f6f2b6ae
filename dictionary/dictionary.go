/*
Package dictionary is the on-disk entry point for chartrie: scanning a
seed word list into an Alphabet, building or reloading a finalized
Trie from a file, and writing one back out through triocodec.

Factory mirrors the teacher's own constructor-object style (see
chartrie.Builder, which a Factory exists to produce): it holds nothing
but the alphabet scanned from the seed dictionary, and Create hands out
a fresh Builder against that alphabet every time it is called.
*/
package dictionary

import (
	"bufio"
	"os"
	"sort"

	"github.com/Zubayear/chartrie/alphabet"
	"github.com/Zubayear/chartrie/chartrie"
	"github.com/Zubayear/chartrie/set"
	"github.com/Zubayear/chartrie/stack"
	"github.com/Zubayear/chartrie/treemap"
	"github.com/Zubayear/chartrie/triocodec"
)

// Factory builds chartrie.Builder values sharing one alphabet, scanned
// once from a seed dictionary file.
type Factory struct {
	alphabet *alphabet.Alphabet
}

// FromDictionary scans path (UTF-8 text, one word per line, trailing
// blank lines ignored) and builds the Alphabet every word in the file
// can use. Codepoint deduplication is done with the teacher's own
// UnorderedSet rather than a bare map, matching the rest of this
// module's preference for the teacher's containers over ad hoc ones.
func FromDictionary(path string) (*Factory, error) {
	a, _, err := scanDictionary(path)
	if err != nil {
		return nil, err
	}
	return &Factory{alphabet: a}, nil
}

// scanDictionary reads path once and returns both the alphabet every
// word in it can use and the words themselves, so Import does not
// have to read the file a second time to get what FromDictionary
// already extracted.
func scanDictionary(path string) (*alphabet.Alphabet, []string, error) {
	words, err := readWords(path)
	if err != nil {
		return nil, nil, err
	}

	seen := set.NewUnorderedSet()
	seen.Insert(alphabet.RootSentinel)
	for _, w := range words {
		for _, r := range w {
			seen.Insert(r)
		}
	}

	codepoints := seen.Runes()
	sort.Slice(codepoints, func(i, j int) bool {
		if codepoints[i] == alphabet.RootSentinel {
			return true
		}
		if codepoints[j] == alphabet.RootSentinel {
			return false
		}
		return codepoints[i] < codepoints[j]
	})

	a, err := alphabet.New(codepoints)
	if err != nil {
		return nil, nil, err
	}
	return a, words, nil
}

// Create returns a fresh Builder bound to the Factory's alphabet.
func (f *Factory) Create() *chartrie.Builder {
	return chartrie.NewBuilder(f.alphabet)
}

// Alphabet returns the Factory's scanned alphabet.
func (f *Factory) Alphabet() *alphabet.Alphabet {
	return f.alphabet
}

// Import builds the alphabet from path, adds every word in the file,
// and finalizes with sort=true, compact=true, returning the ready-to-query trie.
func Import(path string) (*chartrie.Trie, error) {
	a, words, err := scanDictionary(path)
	if err != nil {
		return nil, err
	}
	f := &Factory{alphabet: a}
	b := f.Create()
	if err := b.AddRange(words); err != nil {
		return nil, err
	}
	return b.Finalize(true, true)
}

// Export serializes t as canonical JSON and writes it to path.
func Export(t *chartrie.Trie, path string) error {
	data, err := triocodec.Encode(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads path and decodes it as a finalized trie.
func Load(path string) (*chartrie.Trie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return triocodec.Decode(data)
}

func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Stats summarizes a finalized trie: its word and node counts, plus a
// histogram of words by length.
type Stats struct {
	WordCount int
	NodeCount int
	// depths maps a word's length to the number of words of
	// that length. Built from a treemap.TreeMap so Depths() walks it
	// in ascending key order without a separate sort step.
	depths *treemap.TreeMap[int, int]
}

// ComputeStats walks every root-to-node path of t and tallies Stats. A
// node shared by several parents after DAWG merging is visited once per
// path, so every word is counted at its own length.
func ComputeStats(t *chartrie.Trie) Stats {
	s := Stats{
		WordCount: t.Count(),
		NodeCount: t.NumNodes(),
		depths:    treemap.NewTreeMap[int, int](),
	}

	type frame struct {
		node  uint32
		depth int
	}
	st := stack.NewStack[frame]()
	_, _ = st.Push(frame{node: chartrie.Root, depth: 0})
	for !st.IsEmpty() {
		fr, _ := st.Pop()

		if fr.depth > 0 && t.IsWordEnd(fr.node) {
			treemap.Increment(s.depths, fr.depth, 1)
		}
		for _, c := range t.Children(fr.node) {
			_, _ = st.Push(frame{node: c, depth: fr.depth + 1})
		}
	}
	return s
}

// Depths returns the word lengths present in the trie, ascending.
func (s Stats) Depths() []int {
	return s.depths.Keys()
}

// CountAtDepth returns how many words have the given length.
func (s Stats) CountAtDepth(depth int) int {
	count, _ := s.depths.Get(depth)
	return count
}
