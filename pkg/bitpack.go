package pkg

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// Bits are packed most significant first. When the total is not a multiple
// of eight, the last byte holds the trailing bits by value: the zero padding
// sits in its high bits, in front of the data. Decoding recovers the exact
// bit count from the tree, so no count is stored alongside the payload.

type bitPacker struct {
	w     *bitio.Writer
	n     uint64 // bits written so far
	padAt uint64
	pad   uint8
}

func newBitPacker(out io.Writer, total uint64) *bitPacker {
	p := &bitPacker{w: bitio.NewWriter(out), padAt: total - total%8}
	if tail := total % 8; tail != 0 {
		p.pad = uint8(8 - tail)
	}
	return p
}

func (p *bitPacker) writeCode(c Code) error {
	for i := 0; i < len(c); i++ {
		if p.n == p.padAt && p.pad > 0 {
			if err := p.w.WriteBits(0, p.pad); err != nil {
				return err
			}
			p.pad = 0
		}
		if err := p.w.WriteBool(c[i] == '1'); err != nil {
			return err
		}
		p.n++
	}
	return nil
}

func (p *bitPacker) close() error { return p.w.Close() }

type bitUnpacker struct {
	r     *bitio.Reader
	n     uint64
	padAt uint64
	pad   uint8
}

func newBitUnpacker(in io.Reader, total uint64) *bitUnpacker {
	u := &bitUnpacker{r: bitio.NewReader(in), padAt: total - total%8}
	if tail := total % 8; tail != 0 {
		u.pad = uint8(8 - tail)
	}
	return u
}

func (u *bitUnpacker) readBit() (bool, error) {
	if u.n == u.padAt && u.pad > 0 {
		v, err := u.r.ReadBits(u.pad)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		if v != 0 {
			return false, fmt.Errorf("%w: non-zero padding in final byte", ErrInvalidEncoding)
		}
		u.pad = 0
	}
	bit, err := u.r.ReadBool()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	u.n++
	return bit, nil
}

// Encode replaces every symbol of text with its code and packs the result.
func (t *HuffmanTree) Encode(text string) ([]byte, error) {
	var total uint64
	for _, r := range text {
		code, ok := t.codes[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
		}
		total += uint64(len(code))
	}

	var out bytes.Buffer
	out.Grow(int((total + 7) / 8))
	p := newBitPacker(&out, total)
	for _, r := range text {
		if err := p.writeCode(t.codes[r]); err != nil {
			return nil, err
		}
	}
	if err := p.close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decode walks the tree over the packed payload and returns the text.
func (t *HuffmanTree) Decode(payload []byte) (string, error) {
	if t.root == nilNode {
		if len(payload) != 0 {
			return "", fmt.Errorf("%w: %d payload bytes for an empty tree", ErrInvalidEncoding, len(payload))
		}
		return "", nil
	}

	total, ok := t.encodedBits(uint64(len(payload)) * 8)
	if !ok || (total+7)/8 != uint64(len(payload)) {
		return "", fmt.Errorf("%w: %d payload bytes do not match the tree", ErrInvalidEncoding, len(payload))
	}

	root := t.nodes[t.root]
	u := newBitUnpacker(bytes.NewReader(payload), total)

	var sb strings.Builder
	var count int64
	cur := t.root
	for i := uint64(0); i < total; i++ {
		bit, err := u.readBit()
		if err != nil {
			return "", err
		}

		if root.IsLeaf() {
			if bit {
				return "", fmt.Errorf("%w: unexpected 1 bit at %d", ErrInvalidEncoding, i)
			}
			sb.WriteRune(root.Symbol)
			count++
			continue
		}

		n := t.nodes[cur]
		if bit {
			cur = n.Right
		} else {
			cur = n.Left
		}
		if cur == nilNode {
			return "", fmt.Errorf("%w: no branch for bit %d", ErrInvalidEncoding, i)
		}

		if t.nodes[cur].IsLeaf() {
			sb.WriteRune(t.nodes[cur].Symbol)
			count++
			cur = t.root
		}
	}

	if cur != t.root {
		return "", fmt.Errorf("%w: payload ends inside a code", ErrInvalidEncoding)
	}
	if count != root.Freq {
		return "", fmt.Errorf("%w: decoded %d symbols, tree expects %d", ErrInvalidEncoding, count, root.Freq)
	}
	return sb.String(), nil
}
