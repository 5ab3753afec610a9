package pkg

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxTreeDepth bounds the nesting accepted by ParseTree. Trees built from
// any text that fits in memory stay far below it.
const MaxTreeDepth = 256

const (
	nullToken     = "null"
	internalToken = "#"
)

// Serialize writes the tree in pre-order as comma separated tokens:
// "null" for a missing node, otherwise symbol code point (or "#" for an
// internal node), frequency, left subtree, right subtree.
func (t *HuffmanTree) Serialize() string {
	var sb strings.Builder
	t.serializeNode(&sb, t.root)
	return sb.String()
}

func (t *HuffmanTree) serializeNode(sb *strings.Builder, idx int32) {
	if idx == nilNode {
		sb.WriteString(nullToken)
		return
	}
	n := t.nodes[idx]
	if n.IsLeaf() {
		sb.WriteString(strconv.Itoa(int(n.Symbol)))
	} else {
		sb.WriteString(internalToken)
	}
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatInt(n.Freq, 10))
	sb.WriteByte(',')
	t.serializeNode(sb, n.Left)
	sb.WriteByte(',')
	t.serializeNode(sb, n.Right)
}

type treeParser struct {
	tokens []string
	pos    int
	tree   *HuffmanTree
	seen   map[rune]bool
}

// ParseTree rebuilds a tree from the output of Serialize and regenerates
// its code table.
func ParseTree(data string) (*HuffmanTree, error) {
	if data == "" {
		return nil, fmt.Errorf("%w: empty input", ErrTruncatedTree)
	}

	p := &treeParser{
		tokens: strings.Split(data, ","),
		tree:   &HuffmanTree{root: nilNode},
		seen:   make(map[rune]bool),
	}
	root, err := p.node(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("%w: %d trailing tokens", ErrMalformedTree, len(p.tokens)-p.pos)
	}

	p.tree.root = root
	p.tree.generateCodes()
	return p.tree, nil
}

func (p *treeParser) next() (string, error) {
	if p.pos >= len(p.tokens) {
		return "", fmt.Errorf("%w: expected token %d", ErrTruncatedTree, p.pos)
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

func (p *treeParser) node(depth int) (int32, error) {
	tok, err := p.next()
	if err != nil {
		return nilNode, err
	}
	if tok == nullToken {
		return nilNode, nil
	}
	if depth > MaxTreeDepth {
		return nilNode, fmt.Errorf("%w: nesting deeper than %d", ErrMalformedTree, MaxTreeDepth)
	}

	symbol := internalSymbol
	if tok != internalToken {
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return nilNode, fmt.Errorf("%w: invalid symbol %q", ErrMalformedTree, tok)
		}
		symbol = rune(v)
	}

	tok, err = p.next()
	if err != nil {
		return nilNode, err
	}
	freq, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nilNode, fmt.Errorf("%w: invalid frequency value %q", ErrMalformedTree, tok)
	}
	if freq < 1 {
		return nilNode, fmt.Errorf("%w: frequency %d", ErrMalformedTree, freq)
	}

	left, err := p.node(depth + 1)
	if err != nil {
		return nilNode, err
	}
	right, err := p.node(depth + 1)
	if err != nil {
		return nilNode, err
	}

	if symbol == internalSymbol {
		if left == nilNode || right == nilNode {
			return nilNode, fmt.Errorf("%w: internal node needs two children", ErrMalformedTree)
		}
		lf, rf := p.tree.nodes[left].Freq, p.tree.nodes[right].Freq
		if lf >= freq || rf != freq-lf {
			return nilNode, fmt.Errorf("%w: frequency %d is not the sum of %d and %d", ErrMalformedTree, freq, lf, rf)
		}
	} else {
		if left != nilNode || right != nilNode {
			return nilNode, fmt.Errorf("%w: symbol %d has children", ErrMalformedTree, symbol)
		}
		if p.seen[symbol] {
			return nilNode, fmt.Errorf("%w: duplicate symbol %d", ErrMalformedTree, symbol)
		}
		p.seen[symbol] = true
	}

	return p.tree.addNode(HuffmanNode{Symbol: symbol, Freq: freq, Left: left, Right: right}), nil
}
