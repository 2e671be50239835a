package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NoChild is the child index of a leaf Node.
const NoChild = -1

// Node is one node of a Tree.  A leaf has Left == Right == NoChild and
// carries a Symbol; an internal node has two children and no meaningful
// Symbol.
type Node struct {
	Weight uint64
	Symbol Symbol
	Left   int
	Right  int
}

// IsLeaf reports whether this Node is a leaf.
func (node Node) IsLeaf() bool {
	return node.Left == NoChild
}

// Tree is a Huffman tree stored as an arena of Nodes addressed by index.
//
// Leaves occupy indices 0 through NumLeaves()-1 in ascending Symbol order.
// Internal nodes follow in the order in which they were created, so the
// root, when the tree has more than one leaf, is always the last Node.
//
type Tree struct {
	nodes     []Node
	numLeaves int
	root      int
}

// BuildTree constructs the Huffman tree for the given frequency table.
//
// The tree is fully determined by freq.  Nodes are kept in a min-heap
// ordered by (Weight, index): weight ascending, and among equal weights the
// Node with the lower arena index first.  Since leaves are numbered by
// Symbol and internal nodes are numbered after all leaves in creation
// order, ties go to leaves before internal nodes, to lower Symbols before
// higher ones, and to older internal nodes before newer ones.  Each step
// pops two Nodes; the first popped becomes the left child of the new
// internal node and the second popped becomes the right child.
//
// An empty table yields an empty tree.  A table with a single symbol yields
// a tree whose root is that symbol's leaf.
//
func BuildTree(freq Frequencies) *Tree {
	numLeaves := freq.Len()
	if numLeaves == 0 {
		return &Tree{root: NoChild}
	}

	nodes := make([]Node, 0, 2*numLeaves-1)
	for symbol, count := range freq {
		if count != 0 {
			nodes = append(nodes, Node{
				Weight: count,
				Symbol: Symbol(symbol),
				Left:   NoChild,
				Right:  NoChild,
			})
		}
	}

	h := weightHeap{nodes: nodes, list: make([]int, numLeaves)}
	for index := range h.list {
		h.list[index] = index
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(int)
		b := heap.Pop(&h).(int)

		// Compute the parent weight using saturating addition.
		sum := h.nodes[a].Weight + h.nodes[b].Weight
		if sum < h.nodes[a].Weight {
			sum = ^uint64(0)
		}

		parent := len(h.nodes)
		h.nodes = append(h.nodes, Node{Weight: sum, Left: a, Right: b})
		heap.Push(&h, parent)
	}

	root := heap.Pop(&h).(int)
	assert.Assertf(len(h.nodes) == 2*numLeaves-1, "tree has %d nodes, expected %d", len(h.nodes), 2*numLeaves-1)
	assert.Assertf(root == len(h.nodes)-1, "root %d is not the last node %d", root, len(h.nodes)-1)

	return &Tree{nodes: h.nodes, numLeaves: numLeaves, root: root}
}

// Len returns the total number of Nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the alphabet size.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// Root returns the index of the root Node, or NoChild for an empty tree.
func (t *Tree) Root() int {
	return t.root
}

// Node returns the Node at the given index.
func (t *Tree) Node(index int) Node {
	return t.nodes[index]
}

// Weight returns the weight of the root, which is the total count of the
// frequency table the tree was built from.
func (t *Tree) Weight() uint64 {
	if t.root == NoChild {
		return 0
	}
	return t.nodes[t.root].Weight
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, node := range t.nodes {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%d) = leaf{%d, %d}\n", index, node.Symbol, node.Weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = internal{%d, %d, %d}\n", index, node.Weight, node.Left, node.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type weightHeap {{{

// weightHeap is a min-heap of arena indices, ordered by (Weight, index).
type weightHeap struct {
	nodes []Node
	list  []int
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := h.nodes[a].Weight, h.nodes[b].Weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
