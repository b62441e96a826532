package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// SingleSymbolCode is the code assigned to the only symbol of a one-symbol
// alphabet.  The tree for such an alphabet is a lone leaf, which would
// otherwise be reached by the empty path; an empty code could not be
// decoded.
const SingleSymbolCode = Code("0")

// GenerateCodes walks the tree rooted at root and returns the code for each
// leaf.  Descending to a left child appends a 0 bit and descending to a right
// child appends a 1 bit.
func GenerateCodes[S Symbol, W Weight](root *Node[S, W]) map[S]Code {
	assert.Assertf(root != nil, "root is nil")

	if root.IsLeaf() {
		return map[S]Code{root.symbol: SingleSymbolCode}
	}

	// Walk the tree with an explicit stack.  Each stackItem carries the
	// code accumulated on the path from the root.

	type stackItem struct {
		node   *Node[S, W]
		prefix Code
	}

	codes := make(map[S]Code, 2*root.depth)
	stack := make([]stackItem, 0, root.depth+1)
	stack = append(stack, stackItem{root, ""})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch top.node.Kind() {
		case LeafNode:
			_, dupe := codes[top.node.symbol]
			assert.Assertf(!dupe, "symbol %v appears twice in tree", top.node.symbol)
			codes[top.node.symbol] = top.prefix

		case InternalNode:
			stack = append(stack, stackItem{top.node.right, top.prefix.Append(1)})
			stack = append(stack, stackItem{top.node.left, top.prefix.Append(0)})
		}
	}
	return codes
}
