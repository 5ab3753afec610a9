package pkg

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodePacking(t *testing.T) {
	tests := []struct {
		text string
		want []byte
	}{
		{"", nil},
		{"aaab", []byte{0x0E}},
		{"aaaa", []byte{0x00}},
		{"abababab", []byte{0x55}},
		// 23 bits: the trailing 7 are stored by value in the last byte.
		{"abracadabra", []byte{0x6E, 0x8A, 0x6E}},
	}

	for _, tt := range tests {
		tree := BuildTree(CountFrequencies(tt.text))
		got, err := tree.Encode(tt.text)
		if err != nil {
			t.Fatalf("%q: encode failed: %v", tt.text, err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("%q: expected % x, got % x", tt.text, tt.want, got)
		}

		text, err := tree.Decode(got)
		if err != nil {
			t.Fatalf("%q: decode failed: %v", tt.text, err)
		}
		if text != tt.text {
			t.Errorf("expected %q, got %q", tt.text, text)
		}
	}
}

func TestEncodeUnknownSymbol(t *testing.T) {
	tree := BuildTree(CountFrequencies("ab"))
	_, err := tree.Encode("abc")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestDecodeSingleSymbolRepeated(t *testing.T) {
	text := "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"
	tree := BuildTree(CountFrequencies(text))
	payload, err := tree.Encode(text)
	if err != nil {
		t.Fatal(err)
	}
	if want := (len(text) + 7) / 8; len(payload) != want {
		t.Errorf("expected %d payload bytes, got %d", want, len(payload))
	}

	got, err := tree.Decode(payload)
	if err != nil {
		t.Fatal(err)
	}
	if got != text {
		t.Errorf("expected %d symbols, got %q", len(text), got)
	}
}

func TestDecodeInvalid(t *testing.T) {
	abra := BuildTree(CountFrequencies("abracadabra"))
	single := BuildTree(CountFrequencies("aaaa"))
	empty := BuildTree(CountFrequencies(""))

	tests := []struct {
		name    string
		tree    *HuffmanTree
		payload []byte
	}{
		{"too short", abra, []byte{0x6E, 0x8A}},
		{"too long", abra, []byte{0x6E, 0x8A, 0x6E, 0x00}},
		{"non-zero padding", abra, []byte{0x6E, 0x8A, 0xEE}},
		{"ends inside a code", abra, []byte{0x00, 0x00, 0x7F}},
		{"single symbol one bit", single, []byte{0x01}},
		{"empty tree with payload", empty, []byte{0x00}},
		{"missing payload", abra, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tree.Decode(tt.payload)
			if !errors.Is(err, ErrInvalidEncoding) {
				t.Errorf("expected ErrInvalidEncoding, got %v", err)
			}
		})
	}
}
