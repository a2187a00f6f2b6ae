package chartrie

import (
	"fmt"
	"sort"

	"github.com/Zubayear/chartrie/internal/packed"
	"github.com/Zubayear/chartrie/queue"
)

// Finalize freezes the builder into an immutable, packed Trie. It is a
// five-stage pipeline:
//
//  1. Flatten each node's growable child buffer into the flat
//     childIndices array (optionally stable-sorting each node's
//     children by alphabet index first).
//  2. DAWG-minimize: merge structurally identical subtrees, processing
//     nodes from last to first so that a node's children are already
//     canonical by the time the node itself is fingerprinted.
//  3. Compact to reachable nodes only, via BFS from the root.
//  4. Recompute remaining_depth for every node.
//  5. Trim and lock.
//
// Calling Finalize on an already-finalized builder is a no-op: it
// returns the same Trie produced by the first call, not an error.
func (b *Builder) Finalize(sort, compact bool) (*Trie, error) {
	if b.locked {
		return b.finalized, nil
	}

	nodes, childIndices := b.flatten(sort)
	if compact {
		b.minimizeDAWG(nodes, childIndices)
	}
	nodes, childIndices = compactReachable(nodes, childIndices)
	computeRemainingDepths(nodes, childIndices)

	t := &Trie{
		alphabet:     b.alphabet,
		nodes:        nodes,
		childIndices: childIndices,
		wordCount:    countWordEnds(nodes),
	}

	b.locked = true
	b.finalized = t
	return t, nil
}

// flatten implements stage 1: it discards the per-node growable child
// buffers and produces the flat node/childIndices arrays the rest of
// the pipeline (and the search engine) operate on. remaining_depth is
// left at zero; computeRemainingDepths fills it in later.
func (b *Builder) flatten(doSort bool) ([]node, []uint32) {
	nodes := make([]node, len(b.nodes))
	var childIndices []uint32

	for i, bn := range b.nodes {
		children := append([]uint32(nil), bn.children...)
		if doSort {
			sort.SliceStable(children, func(x, y int) bool {
				return b.nodes[children[x]].charIndex < b.nodes[children[y]].charIndex
			})
		}
		first := uint32(len(childIndices))
		childIndices = append(childIndices, children...)
		nodes[i] = newNode(bn.charIndex, uint8(len(children)), bn.isWordEnd, first, 0)
	}
	return nodes, childIndices
}

// minimizeDAWG implements stage 2: it merges structurally identical
// non-root nodes in place, rewriting childIndices entries to point at
// a single surviving representative. Nodes that end up with no
// remaining references are pruned away in stage 3.
//
// The child-index->positions inverted index (childPositions) lets a
// merge rewrite only the positions that actually referenced the
// merged node, rather than rescanning the whole childIndices array
// per merge.
func (b *Builder) minimizeDAWG(nodes []node, childIndices []uint32) {
	childPositions := make(map[uint32][]int, len(childIndices))
	for pos, c := range childIndices {
		childPositions[c] = append(childPositions[c], pos)
	}

	fingerprints := make(map[string]uint32, len(nodes))
	for i := len(nodes) - 1; i >= 1; i-- {
		key := fingerprintOf(nodes, childIndices, uint32(i))
		existing, ok := fingerprints[key]
		if !ok {
			fingerprints[key] = uint32(i)
			continue
		}
		if existing == uint32(i) {
			continue
		}
		for _, pos := range childPositions[uint32(i)] {
			childIndices[pos] = existing
		}
		childPositions[existing] = append(childPositions[existing], childPositions[uint32(i)]...)
		delete(childPositions, uint32(i))
	}
}

// fingerprintOf builds the structural-equality key for node i: its
// char_index, is_word_end, child_count and the (already canonical,
// thanks to bottom-up processing) sequence of child node indices.
func fingerprintOf(nodes []node, childIndices []uint32, i uint32) string {
	n := nodes[i]
	count := n.meta.ChildCount()
	first := n.firstChild
	return fmt.Sprintf("%d|%v|%d|%v", n.meta.CharIndex(), n.meta.IsWordEnd(), count, childIndices[first:first+uint32(count)])
}

// compactReachable implements stage 3: a breadth-first walk from the
// root assigns contiguous new indices to every reachable node,
// dropping anything orphaned by minimizeDAWG. The BFS frontier is a
// Queue preallocated to len(nodes), since that's a hard upper bound on
// how many indices can ever be enqueued.
func compactReachable(nodes []node, childIndices []uint32) ([]node, []uint32) {
	oldToNew := make([]int32, len(nodes))
	for i := range oldToNew {
		oldToNew[i] = -1
	}

	order := make([]uint32, 0, len(nodes))
	visited := make([]bool, len(nodes))
	visited[0] = true
	order = append(order, 0)
	oldToNew[0] = 0

	q := queue.NewQueueWithCapacity[uint32](len(nodes))
	q.Enqueue(0)
	for !q.IsEmpty() {
		cur, _ := q.Dequeue()
		n := nodes[cur]
		count := n.meta.ChildCount()
		first := n.firstChild
		for _, c := range childIndices[first : first+uint32(count)] {
			if !visited[c] {
				visited[c] = true
				oldToNew[c] = int32(len(order))
				order = append(order, c)
				q.Enqueue(c)
			}
		}
	}

	newNodes := make([]node, len(order))
	newChildIndices := make([]uint32, 0, len(childIndices))
	for newIdx, oldIdx := range order {
		n := nodes[oldIdx]
		count := n.meta.ChildCount()
		first := n.firstChild
		newFirst := uint32(len(newChildIndices))
		for _, c := range childIndices[first : first+uint32(count)] {
			newChildIndices = append(newChildIndices, uint32(oldToNew[c]))
		}
		newNodes[newIdx] = newNode(n.meta.CharIndex(), count, n.meta.IsWordEnd(), newFirst, 0)
	}
	return newNodes, newChildIndices
}

// computeRemainingDepths implements stage 4. Plain DAWGs can share a
// node between parents discovered at different BFS depths, so the
// "children have strictly higher indices than their parent" shortcut
// a single reverse linear pass relies on does not hold in general
// after compaction; this computes remaining_depth with a memoized
// post-order walk instead, which is correct for any acyclic node
// graph regardless of index order.
func computeRemainingDepths(nodes []node, childIndices []uint32) {
	depth := make([]int32, len(nodes))
	for i := range depth {
		depth[i] = -1
	}

	var compute func(i uint32) uint16
	compute = func(i uint32) uint16 {
		if depth[i] >= 0 {
			return uint16(depth[i])
		}
		n := nodes[i]
		count := n.meta.ChildCount()
		if count == 0 {
			depth[i] = 0
			return 0
		}
		first := n.firstChild
		var max uint16
		for _, c := range childIndices[first : first+uint32(count)] {
			if d := compute(c); d > max {
				max = d
			}
		}
		result := max + 1
		depth[i] = int32(result)
		return result
	}

	for i := range nodes {
		d := compute(uint32(i))
		nodes[i].meta = nodes[i].meta.WithRemainingDepth(clampDepth(d))
	}
}

func clampDepth(d uint16) uint16 {
	if d > packed.MaxRemainingDepth {
		return packed.MaxRemainingDepth
	}
	return d
}

func countWordEnds(nodes []node) int {
	n := 0
	for _, nd := range nodes {
		if nd.meta.IsWordEnd() {
			n++
		}
	}
	return n
}
