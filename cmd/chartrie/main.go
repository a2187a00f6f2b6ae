// Command chartrie is a thin operator-facing wrapper around the
// dictionary, chartrie, and search packages: import a word list,
// look up or search a serialized trie, print a few statistics.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
