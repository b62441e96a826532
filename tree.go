package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// BuildTreeFromMap builds a Huffman tree from a map of symbol frequencies.
// Symbols are fed to the builder in ascending order, so the resulting tree
// does not depend on map iteration order.
func BuildTreeFromMap[S Symbol, W Weight](freqs map[S]W) (*Node[S, W], error) {
	return BuildTree(sortedEntries(freqs))
}

// BuildTree builds a Huffman tree from a list of symbol frequencies.  The
// order of entries is the insertion order used to break ties: two calls with
// the same entries in the same order yield identical trees.
//
// Nodes are merged lowest weight first.  Among nodes of equal weight, the
// shallower node is merged first, which keeps the tree balanced; remaining
// ties go to the node that was inserted first.  Of each merged pair, the
// node removed from the queue first becomes the left child.
//
// A table with a single symbol yields a tree that is a single leaf.
func BuildTree[S Symbol, W Weight](entries []Entry[S, W]) (*Node[S, W], error) {
	if len(entries) == 0 {
		return nil, &InvalidInputError{Reason: "no symbols"}
	}

	h := nodeHeap[S, W]{list: make([]heapItem[S, W], 0, len(entries))}
	seen := make(map[S]struct{}, len(entries))
	for _, entry := range entries {
		// NaN never equals itself, so it can be neither deduplicated
		// nor looked up.
		if entry.Symbol != entry.Symbol {
			return nil, &InvalidInputError{Reason: "symbol is NaN"}
		}
		if _, found := seen[entry.Symbol]; found {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("duplicate symbol %v", entry.Symbol)}
		}
		seen[entry.Symbol] = struct{}{}

		// NaN compares false against everything, so test the negation.
		if !(entry.Weight >= 0) {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("symbol %v has invalid weight %v", entry.Symbol, entry.Weight)}
		}

		h.list = append(h.list, heapItem[S, W]{newLeaf(entry.Symbol, entry.Weight), h.nextSeq})
		h.nextSeq++
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem[S, W])
		b := heap.Pop(&h).(heapItem[S, W])

		sum := a.node.weight + b.node.weight
		if sum < a.node.weight || sum < b.node.weight {
			return nil, &InvalidInputError{Reason: "sum of weights overflows"}
		}

		node := newInternal(a.node, b.node, sum)
		heap.Push(&h, heapItem[S, W]{node, h.nextSeq})
		h.nextSeq++
	}

	root := heap.Pop(&h).(heapItem[S, W]).node
	assert.Assertf(root.NumLeaves() == len(entries), "tree has %d leaves, expected %d", root.NumLeaves(), len(entries))
	return root, nil
}

func sortedEntries[S Symbol, W Weight](freqs map[S]W) []Entry[S, W] {
	keys := maps.Keys(freqs)
	slices.Sort(keys)
	entries := make([]Entry[S, W], len(keys))
	for i, symbol := range keys {
		entries[i] = Entry[S, W]{symbol, freqs[symbol]}
	}
	return entries
}

// type heapItem + type nodeHeap {{{

type heapItem[S Symbol, W Weight] struct {
	node *Node[S, W]
	seq  uint64
}

type nodeHeap[S Symbol, W Weight] struct {
	list    []heapItem[S, W]
	nextSeq uint64
}

func (h *nodeHeap[S, W]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S, W]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S, W]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S, W]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	if a.node.depth != b.node.depth {
		return a.node.depth < b.node.depth
	}
	return a.seq < b.seq
}

func (h *nodeHeap[S, W]) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem[S, W]))
}

func (h *nodeHeap[S, W]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem[S, W]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[int, int])(nil)

// }}}
