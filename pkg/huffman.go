package pkg

import (
	"cmp"
	"math"
	"slices"
)

// Huffman compression using frequency-based encoding

const (
	nilNode        int32 = -1
	internalSymbol rune  = -1
)

// HuffmanNode is an element of a tree's node arena. Leaves have no
// children; internal nodes always have both.
type HuffmanNode struct {
	Symbol rune
	Freq   int64
	Left   int32
	Right  int32
}

func (n HuffmanNode) IsLeaf() bool { return n.Left == nilNode && n.Right == nilNode }

// Code is a prefix code written as a string of '0' and '1'.
type Code string

// Leaf describes one symbol of a tree together with its assigned code.
type Leaf struct {
	Symbol rune
	Freq   int64
	Code   Code
}

// HuffmanTree owns its nodes and the code table derived from them.
type HuffmanTree struct {
	nodes []HuffmanNode
	root  int32
	codes map[rune]Code
}

// BuildTree merges the two least frequent nodes until one remains.
// Nodes are stably sorted before every merge, so ties keep the order of the
// frequency table and earlier merges.
func BuildTree(freqs *FrequencyTable) *HuffmanTree {
	t := &HuffmanTree{root: nilNode}
	if freqs.Len() == 0 {
		t.generateCodes()
		return t
	}

	queue := make([]int32, 0, freqs.Len())
	for _, f := range freqs.entries {
		queue = append(queue, t.addNode(HuffmanNode{
			Symbol: f.Symbol,
			Freq:   f.Count,
			Left:   nilNode,
			Right:  nilNode,
		}))
	}

	for len(queue) > 1 {
		slices.SortStableFunc(queue, func(a, b int32) int {
			return cmp.Compare(t.nodes[a].Freq, t.nodes[b].Freq)
		})
		left, right := queue[0], queue[1]
		parent := t.addNode(HuffmanNode{
			Symbol: internalSymbol,
			Freq:   t.nodes[left].Freq + t.nodes[right].Freq,
			Left:   left,
			Right:  right,
		})
		queue = append(queue[2:], parent)
	}

	t.root = queue[0]
	t.generateCodes()
	return t
}

func (t *HuffmanTree) addNode(n HuffmanNode) int32 {
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// Root returns the root node, or false for the tree of an empty text.
func (t *HuffmanTree) Root() (HuffmanNode, bool) {
	if t.root == nilNode {
		return HuffmanNode{}, false
	}
	return t.nodes[t.root], true
}

func (t *HuffmanTree) Len() int { return len(t.nodes) }

// Code returns the code assigned to r.
func (t *HuffmanTree) Code(r rune) (Code, bool) {
	c, ok := t.codes[r]
	return c, ok
}

// Codes returns a copy of the code table.
func (t *HuffmanTree) Codes() map[rune]Code {
	out := make(map[rune]Code, len(t.codes))
	for r, c := range t.codes {
		out[r] = c
	}
	return out
}

// Leaves lists the tree's symbols left to right.
func (t *HuffmanTree) Leaves() []Leaf {
	var leaves []Leaf
	t.walkLeaves(func(n HuffmanNode, code Code) {
		leaves = append(leaves, Leaf{Symbol: n.Symbol, Freq: n.Freq, Code: code})
	})
	return leaves
}

// walkLeaves visits every leaf depth first, left before right.
// A root that is itself a leaf is given the one-bit code "0" so that each
// occurrence of the only symbol still produces a bit.
func (t *HuffmanTree) walkLeaves(fn func(n HuffmanNode, code Code)) {
	if t.root == nilNode {
		return
	}
	if t.nodes[t.root].IsLeaf() {
		// Single unique symbol case
		fn(t.nodes[t.root], "0")
		return
	}

	type frame struct {
		node   int32
		prefix string
	}
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[f.node]
		if n.IsLeaf() {
			fn(n, Code(f.prefix))
			continue
		}
		stack = append(stack,
			frame{node: n.Right, prefix: f.prefix + "1"},
			frame{node: n.Left, prefix: f.prefix + "0"},
		)
	}
}

func (t *HuffmanTree) generateCodes() {
	t.codes = make(map[rune]Code)
	t.walkLeaves(func(n HuffmanNode, code Code) {
		t.codes[n.Symbol] = code
	})
}

// EncodedBits is the length in bits of the text the tree was built from.
// It reports false if the count does not fit in a uint64.
func (t *HuffmanTree) EncodedBits() (uint64, bool) {
	return t.encodedBits(math.MaxUint64)
}

// encodedBits sums freq*len(code) over all leaves, giving up once the
// total would exceed limit.
func (t *HuffmanTree) encodedBits(limit uint64) (uint64, bool) {
	var total uint64
	ok := true
	t.walkLeaves(func(n HuffmanNode, code Code) {
		if !ok {
			return
		}
		l := uint64(len(code))
		if n.Freq < 0 || uint64(n.Freq) > (limit-total)/l {
			ok = false
			return
		}
		total += uint64(n.Freq) * l
	})
	if !ok {
		return 0, false
	}
	return total, true
}
