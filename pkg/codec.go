package pkg

import (
	"fmt"
	"unicode/utf8"
)

// Compress encodes text and frames it with its tree and the extension tag.
// Empty text yields a container holding the "null" tree and no payload.
func Compress(text, ext string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}

	tree := BuildTree(CountFrequencies(text))
	payload, err := tree.Encode(text)
	if err != nil {
		return nil, err
	}
	return Frame(ext, []byte(tree.Serialize()), payload)
}

// Decompress reverses Compress, returning the text and its extension tag.
func Decompress(data []byte) (string, string, error) {
	c, err := Unframe(data)
	if err != nil {
		return "", "", err
	}

	tree, err := ParseTree(string(c.Tree))
	if err != nil {
		return "", "", err
	}

	text, err := tree.Decode(c.Payload)
	if err != nil {
		return "", "", fmt.Errorf("decode payload: %w", err)
	}
	return text, c.Extension, nil
}
