package pkg

// Frequency is the number of times a symbol occurs in a text.
type Frequency struct {
	Symbol rune
	Count  int64
}

// FrequencyTable keeps symbol counts in order of first appearance.
// The order drives tie-breaking during tree construction.
type FrequencyTable struct {
	entries []Frequency
	index   map[rune]int
}

// CountFrequencies counts every code point in text.
func CountFrequencies(text string) *FrequencyTable {
	t := &FrequencyTable{index: make(map[rune]int)}
	for _, r := range text {
		t.add(r)
	}
	return t
}

func (t *FrequencyTable) add(r rune) {
	if i, ok := t.index[r]; ok {
		t.entries[i].Count++
		return
	}
	t.index[r] = len(t.entries)
	t.entries = append(t.entries, Frequency{Symbol: r, Count: 1})
}

func (t *FrequencyTable) Len() int { return len(t.entries) }

// Count returns the number of occurrences of r, zero if it never appeared.
func (t *FrequencyTable) Count(r rune) int64 {
	if i, ok := t.index[r]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Entries returns a copy of the table in first-seen order.
func (t *FrequencyTable) Entries() []Frequency {
	return append([]Frequency(nil), t.entries...)
}
