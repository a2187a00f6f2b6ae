package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zubayear/chartrie/dictionary"
)

var statsCmd = &cobra.Command{
	Use:   "stats <trie>",
	Short: "Print word count, node count, and a depth histogram for a serialized trie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		triePath := args[0]

		tr, err := dictionary.Load(triePath)
		if err != nil {
			return fmt.Errorf("load %s: %w", triePath, err)
		}

		stats := dictionary.ComputeStats(tr)
		fmt.Printf("words: %d\n", stats.WordCount)
		fmt.Printf("nodes: %d\n", stats.NodeCount)
		compactionRatio := float64(stats.NodeCount) / float64(max(stats.WordCount, 1))
		fmt.Printf("nodes per word: %.3f\n", compactionRatio)
		fmt.Println("word-length histogram:")
		for _, depth := range stats.Depths() {
			fmt.Printf("  %2d: %d\n", depth, stats.CountAtDepth(depth))
		}
		return nil
	},
}
