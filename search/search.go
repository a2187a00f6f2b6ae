/*
Package search implements the four pattern-search algorithms
(FindPrefix, FindExact, FindFragment, FindSuffix) plus All, the full
enumerator, all operating over a finalized chartrie.Trie.

Every search returns a lazy iter.Seq[string] rather than a
materialized slice, so a caller that only wants the first few results
never forces the engine to walk the rest of the dictionary; range-over-func
iterators make this a direct translation of "keep yielding until the
caller stops pulling" rather than anything manufactured with goroutines
or channels.

Each walk is an explicit depth-first traversal driven by a stack of
(node, depth) frames — reusing the teacher's own generic Stack type as
the frame stack, the same way the teacher's Remove used it to
backtrack after a trie walk — plus a reusable rune buffer drawn from a
sync.Pool (capacity grown on demand from the search package's own
golang.org/x/exp/constraints-based helper) rather than allocated fresh
per query.
*/
package search

import (
	"iter"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/Zubayear/chartrie/chartrie"
	"github.com/Zubayear/chartrie/pattern"
	"github.com/Zubayear/chartrie/stack"
)

// frame is a single stack entry during a trie walk: the node being
// visited and its depth (number of characters from the root).
type frame struct {
	node  uint32
	depth int
}

// scratchBuffer is a pooled, growable rune buffer. Position i holds
// the character written when a node at depth i+1 is expanded.
type scratchBuffer struct {
	data []rune
}

func (b *scratchBuffer) set(i int, r rune) {
	if i >= len(b.data) {
		newLen := growCap(len(b.data), i+1)
		if cap(b.data) < newLen {
			bigger := make([]rune, len(b.data), newLen)
			copy(bigger, b.data)
			b.data = bigger
		}
		b.data = b.data[:newLen]
	}
	b.data[i] = r
}

func (b *scratchBuffer) at(i int) rune {
	return b.data[i]
}

func (b *scratchBuffer) word(n int) string {
	return string(b.data[:n])
}

// growCap doubles a buffer towards at least need, the generic helper
// search uses its x/exp/constraints dependency for.
func growCap[T constraints.Integer](cur, need T) T {
	if need <= cur {
		return cur
	}
	grown := cur * 2
	if grown < need {
		grown = need
	}
	return grown
}

// defaultBufferCapacity matches the specification's "default 256" for
// the pooled character buffer.
const defaultBufferCapacity = 256

var bufferPool = sync.Pool{
	New: func() any {
		return &scratchBuffer{data: make([]rune, 0, defaultBufferCapacity)}
	},
}

func getBuffer() *scratchBuffer {
	return bufferPool.Get().(*scratchBuffer)
}

func putBuffer(b *scratchBuffer) {
	b.data = b.data[:0]
	bufferPool.Put(b)
}

// framePool recycles the DFS frame stacks every walk pushes (node,
// depth) pairs onto, the same way bufferPool recycles scratch rune
// buffers: a walk checks one out, Resets it back to empty on return
// instead of letting it get collected, and the next walk reuses its
// already-grown backing array.
var framePool = sync.Pool{
	New: func() any {
		return stack.NewStack[frame]()
	},
}

func getFrames() *stack.Stack[frame] {
	return framePool.Get().(*stack.Stack[frame])
}

func putFrames(st *stack.Stack[frame]) {
	st.Reset()
	framePool.Put(st)
}

// All enumerates every word in t, in ascending alphabet order (when
// the trie was finalized with sort=true, or words were inserted in
// that order).
func All(t *chartrie.Trie) iter.Seq[string] {
	return func(yield func(string) bool) {
		buf := getBuffer()
		defer putBuffer(buf)
		walkAll(t, chartrie.Root, 0, buf, yield)
	}
}

// walkAll is a DFS from start (at startDepth) that emits every
// descendant word-end node's word, in ascending alphabet order:
// children are pushed in reverse order so that popping the stack
// visits them ascending. Returns false if yield asked to stop early.
func walkAll(t *chartrie.Trie, start uint32, startDepth int, buf *scratchBuffer, yield func(string) bool) bool {
	st := getFrames()
	defer putFrames(st)
	_, _ = st.Push(frame{node: start, depth: startDepth})
	for !st.IsEmpty() {
		fr, _ := st.Pop()
		n, d := fr.node, fr.depth
		if d > 0 {
			buf.set(d-1, t.Rune(n))
		}
		if t.IsWordEnd(n) {
			if !yield(buf.word(d)) {
				return false
			}
		}
		children := t.Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			_, _ = st.Push(frame{node: children[i], depth: d + 1})
		}
	}
	return true
}

// Find dispatches p to the search algorithm its MatchType selects. An
// empty pattern always means "every word", regardless of MatchType.
func Find(t *chartrie.Trie, p pattern.PatternMatch) (iter.Seq[string], error) {
	if p.Empty() {
		return All(t), nil
	}
	switch p.MatchType {
	case pattern.IsPrefix:
		return FindPrefix(t, p)
	case pattern.IsWord:
		return FindExact(t, p)
	case pattern.IsFragment:
		return FindFragment(t, p)
	case pattern.IsSuffix:
		return FindSuffix(t, p)
	default:
		return All(t), nil
	}
}

// FindPrefix returns every word that starts with p, matching
// character-by-character (including wildcards and alternatives).
func FindPrefix(t *chartrie.Trie, p pattern.PatternMatch) (iter.Seq[string], error) {
	if p.Empty() {
		return All(t), nil
	}
	if _, err := p.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		walkConstrained(t, p, true, yield)
	}, nil
}

// FindExact returns every word of exactly p's length that p matches slot
// by slot, wildcards and alternatives included; a pattern with neither
// yields at most the one word equal to it.
func FindExact(t *chartrie.Trie, p pattern.PatternMatch) (iter.Seq[string], error) {
	if p.Empty() {
		return All(t), nil
	}
	if _, err := p.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		walkConstrained(t, p, false, yield)
	}, nil
}

// walkConstrained implements the shared prefix/exact traversal: phase
// 1 seeds the stack with root children matching p's first slot, phase
// 2 pops frames, pruning via remaining_depth, and either continues
// descending, sub-walks (continueAsPrefix) or checks for a word end
// (exact) once the whole pattern has been consumed.
func walkConstrained(t *chartrie.Trie, p pattern.PatternMatch, continueAsPrefix bool, yield func(string) bool) {
	buf := getBuffer()
	defer putBuffer(buf)

	patLen := p.Len()
	st := getFrames()
	defer putFrames(st)

	var seed []uint32
	for _, c := range t.Children(chartrie.Root) {
		if p.Items[0].Matches(t.Rune(c)) {
			seed = append(seed, c)
		}
	}
	for i := len(seed) - 1; i >= 0; i-- {
		_, _ = st.Push(frame{node: seed[i], depth: 1})
	}

	for !st.IsEmpty() {
		fr, _ := st.Pop()
		n, d := fr.node, fr.depth
		if patLen-d > int(t.RemainingDepth(n)) {
			continue
		}
		buf.set(d-1, t.Rune(n))

		if d == patLen {
			if continueAsPrefix {
				if !walkAll(t, n, d, buf, yield) {
					return
				}
			} else if t.IsWordEnd(n) {
				if !yield(buf.word(d)) {
					return
				}
			}
			continue
		}

		var next []uint32
		for _, c := range t.Children(n) {
			if p.Items[d].Matches(t.Rune(c)) {
				next = append(next, c)
			}
		}
		for i := len(next) - 1; i >= 0; i-- {
			_, _ = st.Push(frame{node: next[i], depth: d + 1})
		}
	}
}

// FindFragment returns every word containing p as a contiguous
// substring. p must not start or end with a wildcard (IsFragment's
// one validity rule).
func FindFragment(t *chartrie.Trie, p pattern.PatternMatch) (iter.Seq[string], error) {
	if p.Empty() {
		return All(t), nil
	}
	if _, err := p.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		walkSlidingWindow(t, p, false, yield)
	}, nil
}

// FindSuffix returns every word ending with p.
func FindSuffix(t *chartrie.Trie, p pattern.PatternMatch) (iter.Seq[string], error) {
	if p.Empty() {
		return All(t), nil
	}
	if _, err := p.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		walkSlidingWindow(t, p, true, yield)
	}, nil
}

// walkSlidingWindow is the shared fragment/suffix DFS: an
// unconstrained walk of the whole trie, pruned whenever p can no
// longer fit between the current depth and any descendant leaf. At
// each word-end node it slides a window of length patLen across the
// buffered path so far (every offset for fragment, only the trailing
// offset for suffix), emitting the node's word at most once.
func walkSlidingWindow(t *chartrie.Trie, p pattern.PatternMatch, suffixOnly bool, yield func(string) bool) {
	buf := getBuffer()
	defer putBuffer(buf)

	patLen := p.Len()
	st := getFrames()
	defer putFrames(st)
	_, _ = st.Push(frame{node: chartrie.Root, depth: 0})

	for !st.IsEmpty() {
		fr, _ := st.Pop()
		n, d := fr.node, fr.depth

		if patLen > int(t.RemainingDepth(n))+d {
			continue
		}
		if d > 0 {
			buf.set(d-1, t.Rune(n))
		}

		if d >= patLen && t.IsWordEnd(n) {
			if suffixOnly {
				if windowMatches(p, buf, d-patLen) {
					if !yield(buf.word(d)) {
						return
					}
				}
			} else {
				for offset := 0; offset <= d-patLen; offset++ {
					if windowMatches(p, buf, offset) {
						if !yield(buf.word(d)) {
							return
						}
						break
					}
				}
			}
		}

		children := t.Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			_, _ = st.Push(frame{node: children[i], depth: d + 1})
		}
	}
}

func windowMatches(p pattern.PatternMatch, buf *scratchBuffer, offset int) bool {
	for i := 0; i < p.Len(); i++ {
		if !p.Items[i].Matches(buf.at(offset + i)) {
			return false
		}
	}
	return true
}
