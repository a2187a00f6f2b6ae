/*
Package benchstats holds the small pieces every package's
_bench_test.go file would otherwise duplicate: counting how many
values an iter.Seq-style callback yields, and generating deterministic
word lists sized for a benchmark rather than a unit test.
*/
package benchstats

import "fmt"

// Drain pulls every value out of an iter.Seq-shaped sequence and
// returns how many there were, discarding the values themselves. It
// exists so a benchmark that only cares about throughput doesn't pay
// for a slice allocation just to count results.
func Drain[T any](seq func(func(T) bool)) int {
	n := 0
	seq(func(T) bool {
		n++
		return true
	})
	return n
}

// SequentialWords returns n deterministic, distinct words of the form
// prefix0, prefix1, ... prefix(n-1). Benchmarks use this instead of
// random generation so repeated runs insert and look up the same
// words, keeping allocation and comparison costs comparable across
// runs.
func SequentialWords(prefix string, n int) []string {
	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return words
}
