package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Zubayear/chartrie/dictionary"
)

var importCmd = &cobra.Command{
	Use:   "import <dict> <out>",
	Short: "Build a trie from a line-delimited word file and serialize it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dictPath, outPath := args[0], args[1]

		start := time.Now()
		tr, err := dictionary.Import(dictPath)
		if err != nil {
			return fmt.Errorf("import %s: %w", dictPath, err)
		}
		importDuration := time.Since(start)

		if err := dictionary.Export(tr, outPath); err != nil {
			return fmt.Errorf("export %s: %w", outPath, err)
		}

		log.Info().
			Str("dictionary", dictPath).
			Str("out", outPath).
			Int("words", tr.Count()).
			Int("nodes", tr.NumNodes()).
			Dur("import_duration", importDuration).
			Msg("imported dictionary")
		return nil
	},
}
