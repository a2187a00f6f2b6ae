package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Zubayear/chartrie/dictionary"
	"github.com/Zubayear/chartrie/pattern"
	"github.com/Zubayear/chartrie/priorityqueue"
	"github.com/Zubayear/chartrie/search"
)

var (
	searchPrefix   string
	searchSuffix   string
	searchFragment string
	searchWord     string
	searchTop      int
)

var searchCmd = &cobra.Command{
	Use:   "search <trie>",
	Short: "Search a serialized trie with a prefix, suffix, fragment, or exact-word pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		triePath := args[0]

		tr, err := dictionary.Load(triePath)
		if err != nil {
			return fmt.Errorf("load %s: %w", triePath, err)
		}

		p, err := searchPattern()
		if err != nil {
			return err
		}

		seq, err := search.Find(tr, p)
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}

		var results []string
		if searchTop > 0 {
			results = topN(seq, searchTop)
		} else {
			seq(func(w string) bool {
				results = append(results, w)
				return true
			})
		}

		log.Debug().Str("trie", triePath).Int("results", len(results)).Msg("search")
		for _, w := range results {
			fmt.Println(w)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchPrefix, "prefix", "", "match words starting with this pattern")
	searchCmd.Flags().StringVar(&searchSuffix, "suffix", "", "match words ending with this pattern")
	searchCmd.Flags().StringVar(&searchFragment, "fragment", "", "match words containing this pattern")
	searchCmd.Flags().StringVar(&searchWord, "word", "", "match this exact pattern")
	searchCmd.Flags().IntVar(&searchTop, "top", 0, "bound the result count to the N lexicographically smallest matches (0 = unbounded)")
}

func searchPattern() (pattern.PatternMatch, error) {
	set := 0
	var p pattern.PatternMatch
	if searchPrefix != "" {
		p = pattern.FromPrefix(searchPrefix)
		set++
	}
	if searchSuffix != "" {
		p = pattern.FromSuffix(searchSuffix)
		set++
	}
	if searchFragment != "" {
		p = pattern.FromFragment(searchFragment)
		set++
	}
	if searchWord != "" {
		p = pattern.FromWord(searchWord)
		set++
	}
	if set != 1 {
		return p, fmt.Errorf("exactly one of --prefix, --suffix, --fragment, --word must be set")
	}
	return p, nil
}

// topN bounds seq to the n lexicographically smallest results using a
// max-heap of size n: whenever the heap is full, a new candidate
// smaller than the current max evicts it, leaving the n smallest
// values seen once every result has been pulled.
func topN(seq func(func(string) bool), n int) []string {
	heap := priorityqueue.NewBinaryHeap[string]()
	seq(func(w string) bool {
		heap.AddBounded(w, n)
		return true
	})

	sorted := heap.Sort()
	out := make([]string, len(sorted))
	for i, w := range sorted {
		out[len(sorted)-1-i] = w
	}
	return out
}
