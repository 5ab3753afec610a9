package pkg

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Container layout, integers little-endian:
//
//	[extLen:4][ext][treeLen:4][tree][payload...]
const headerSize = 8

// Container is a parsed frame. Its slices alias the framed buffer.
type Container struct {
	Extension string
	Tree      []byte
	Payload   []byte
}

// Frame bundles the extension tag, serialized tree and payload.
func Frame(ext string, tree, payload []byte) ([]byte, error) {
	if uint64(len(ext)) > math.MaxUint32 || uint64(len(tree)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: section longer than 4 GiB", ErrMalformedContainer)
	}

	out := make([]byte, 0, headerSize+len(ext)+len(tree)+len(payload))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(ext)))
	out = append(out, ext...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(tree)))
	out = append(out, tree...)
	out = append(out, payload...)
	return out, nil
}

// Unframe splits a container using its two length prefixes.
func Unframe(data []byte) (*Container, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformedContainer, len(data))
	}

	extLen := uint64(binary.LittleEndian.Uint32(data))
	rest := data[4:]
	if extLen+4 > uint64(len(rest)) {
		return nil, fmt.Errorf("%w: extension length %d exceeds buffer", ErrMalformedContainer, extLen)
	}
	ext := rest[:extLen]
	rest = rest[extLen:]

	treeLen := uint64(binary.LittleEndian.Uint32(rest))
	rest = rest[4:]
	if treeLen > uint64(len(rest)) {
		return nil, fmt.Errorf("%w: tree length %d exceeds buffer", ErrMalformedContainer, treeLen)
	}

	return &Container{
		Extension: string(ext),
		Tree:      rest[:treeLen],
		Payload:   rest[treeLen:],
	}, nil
}
