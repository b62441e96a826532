package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// NodeKind distinguishes the two kinds of Node.
type NodeKind byte

const (
	// LeafNode is a Node that holds one Symbol.
	LeafNode NodeKind = iota

	// InternalNode is a Node with exactly two children.
	InternalNode
)

// String returns the name of this NodeKind.
func (kind NodeKind) String() string {
	switch kind {
	case LeafNode:
		return "Leaf"
	case InternalNode:
		return "Internal"
	default:
		return fmt.Sprintf("NodeKind(%d)", byte(kind))
	}
}

// Node is a node of a Huffman tree.  A Node is either a leaf, which holds a
// Symbol, or an internal node, which holds a left and a right child.
//
// Nodes are immutable once built.
type Node[S Symbol, W Weight] struct {
	kind   NodeKind
	symbol S
	weight W
	depth  int
	left   *Node[S, W]
	right  *Node[S, W]
}

func newLeaf[S Symbol, W Weight](symbol S, weight W) *Node[S, W] {
	return &Node[S, W]{kind: LeafNode, symbol: symbol, weight: weight}
}

func newInternal[S Symbol, W Weight](left, right *Node[S, W], weight W) *Node[S, W] {
	depth := left.depth
	if depth < right.depth {
		depth = right.depth
	}
	return &Node[S, W]{
		kind:   InternalNode,
		weight: weight,
		depth:  depth + 1,
		left:   left,
		right:  right,
	}
}

// Kind returns whether this is a leaf or an internal node.
func (n *Node[S, W]) Kind() NodeKind {
	return n.kind
}

// IsLeaf is shorthand for n.Kind() == LeafNode.
func (n *Node[S, W]) IsLeaf() bool {
	return n.kind == LeafNode
}

// Symbol returns the symbol held by a leaf.  It returns the zero value for
// internal nodes.
func (n *Node[S, W]) Symbol() S {
	return n.symbol
}

// Weight returns the sum of the weights of all leaves under this node.
func (n *Node[S, W]) Weight() W {
	return n.weight
}

// Depth returns the height of the subtree rooted at this node.  Leaves have
// depth 0.
func (n *Node[S, W]) Depth() int {
	return n.depth
}

// Left returns the left child of an internal node, or nil for a leaf.
func (n *Node[S, W]) Left() *Node[S, W] {
	return n.left
}

// Right returns the right child of an internal node, or nil for a leaf.
func (n *Node[S, W]) Right() *Node[S, W] {
	return n.right
}

// NumLeaves returns the number of leaves in the subtree rooted at this node.
func (n *Node[S, W]) NumLeaves() int {
	count := 0
	n.walk(func(node *Node[S, W], _ int) {
		if node.IsLeaf() {
			count++
		}
	})
	return count
}

// String returns a compact nested representation of the subtree, e.g.
// "(15 (6 c (3 e d)) (9 b a))".
func (n *Node[S, W]) String() string {
	var buf bytes.Buffer
	n.format(&buf)
	return buf.String()
}

func (n *Node[S, W]) format(buf *bytes.Buffer) {
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%v", n.symbol)
		return
	}
	fmt.Fprintf(buf, "(%v ", n.weight)
	n.left.format(buf)
	buf.WriteByte(' ')
	n.right.format(buf)
	buf.WriteByte(')')
}

// Dump writes a programmer-readable debugging dump of the subtree rooted at
// this node to the given writer, one node per line.
func (n *Node[S, W]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.walk(func(node *Node[S, W], level int) {
		for i := 0; i < level; i++ {
			buf.WriteByte('\t')
		}
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "Leaf{symbol=%v, weight=%v}\n", node.symbol, node.weight)
		} else {
			fmt.Fprintf(&buf, "Internal{weight=%v, depth=%d}\n", node.weight, node.depth)
		}
	})
	return buf.WriteTo(w)
}

// walk visits the subtree in pre-order, left before right.
func (n *Node[S, W]) walk(fn func(node *Node[S, W], level int)) {
	type stackItem struct {
		node  *Node[S, W]
		level int
	}

	stack := make([]stackItem, 0, n.depth+1)
	stack = append(stack, stackItem{n, 0})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(top.node, top.level)
		if !top.node.IsLeaf() {
			stack = append(stack, stackItem{top.node.right, top.level + 1})
			stack = append(stack, stackItem{top.node.left, top.level + 1})
		}
	}
}

var _ fmt.Stringer = (*Node[int, int])(nil)
