package pkg

import (
	"errors"
	"strings"
	"testing"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", "null"},
		{"aaaa", "97,4,null,null"},
		{"aaab", "#,4,98,1,null,null,97,3,null,null"},
		{"abracadabra", "#,11,97,5,null,null,#,6,#,2,99,1,null,null,100,1,null,null,#,4,98,2,null,null,114,2,null,null"},
		{"é😀😀", "#,3,233,1,null,null,128512,2,null,null"},
	}

	for _, tt := range tests {
		got := BuildTree(CountFrequencies(tt.text)).Serialize()
		if got != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.text, tt.want, got)
		}
	}
}

func TestParseTreeRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"x",
		"aaab",
		"abracadabra",
		"The tree regenerates the same codes after parsing, 日本語 included. 😀",
	}

	for _, text := range texts {
		tree := BuildTree(CountFrequencies(text))
		parsed, err := ParseTree(tree.Serialize())
		if err != nil {
			t.Fatalf("%q: parse failed: %v", text, err)
		}
		if parsed.Serialize() != tree.Serialize() {
			t.Errorf("%q: reserialized tree differs", text)
		}

		want, got := tree.Codes(), parsed.Codes()
		if len(want) != len(got) {
			t.Fatalf("%q: expected %d codes, got %d", text, len(want), len(got))
		}
		for r, c := range want {
			if got[r] != c {
				t.Errorf("%q: symbol %q expected %s, got %s", text, r, c, got[r])
			}
		}
	}
}

func TestParseTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", ErrTruncatedTree},
		{"missing frequency", "97", ErrTruncatedTree},
		{"missing right subtree", "#,4,98,1,null,null", ErrTruncatedTree},
		{"non-numeric frequency", "97,x,null,null", ErrMalformedTree},
		{"non-numeric symbol", "abc,1,null,null", ErrMalformedTree},
		{"surrogate symbol", "55296,1,null,null", ErrMalformedTree},
		{"zero frequency", "97,0,null,null", ErrMalformedTree},
		{"internal without children", "#,4,null,null", ErrMalformedTree},
		{"internal with one child", "#,1,97,1,null,null,null", ErrMalformedTree},
		{"leaf with children", "97,2,98,1,null,null,99,1,null,null", ErrMalformedTree},
		{"frequency mismatch", "#,5,98,1,null,null,97,3,null,null", ErrMalformedTree},
		{"duplicate symbol", "#,2,97,1,null,null,97,1,null,null", ErrMalformedTree},
		{"trailing tokens", "97,1,null,null,null", ErrMalformedTree},
		{"too deep", strings.Repeat("#,1,", MaxTreeDepth+10), ErrMalformedTree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTree(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
