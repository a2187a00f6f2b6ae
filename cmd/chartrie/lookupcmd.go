package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Zubayear/chartrie/dictionary"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <trie> <word>",
	Short: "Report whether a serialized trie contains a word",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		triePath, word := args[0], args[1]

		tr, err := dictionary.Load(triePath)
		if err != nil {
			return fmt.Errorf("load %s: %w", triePath, err)
		}

		found := tr.Contains(word)
		log.Debug().Str("trie", triePath).Str("word", word).Bool("found", found).Msg("lookup")
		if found {
			fmt.Println("found")
		} else {
			fmt.Println("not found")
		}
		return nil
	},
}
