package tally

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Tally counts lower-cased words and remembers the order in which each word
// was first seen.
type Tally struct {
	m *linkedhashmap.Map
}

// New returns an empty Tally.
func New() *Tally {
	return &Tally{m: linkedhashmap.New()}
}

// Tokenize splits line on runs of whitespace and lower-cases each token.
func Tokenize(line string) []string {
	words := strings.Fields(line)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// Count tallies every token of line.
func Count(line string) *Tally {
	t := New()
	for _, w := range Tokenize(line) {
		t.Add(w)
	}
	return t
}

// Add increments the count for word. Empty words are ignored.
func (t *Tally) Add(word string) {
	if word == "" {
		return
	}
	// Put on an existing key keeps its original position.
	t.m.Put(word, t.Get(word)+1)
}

// Get returns the count for word, or 0 if it was never added.
func (t *Tally) Get(word string) int {
	v, ok := t.m.Get(word)
	if !ok {
		return 0
	}
	return v.(int)
}

// Words returns the distinct words in first-occurrence order.
func (t *Tally) Words() []string {
	keys := t.m.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.(string)
	}
	return out
}

// Len returns the number of distinct words.
func (t *Tally) Len() int { return t.m.Size() }

// Total returns the sum of all counts.
func (t *Tally) Total() int {
	n := 0
	it := t.m.Iterator()
	for it.Next() {
		n += it.Value().(int)
	}
	return n
}

// String renders the tally like a Go map literal, but in first-occurrence
// order rather than sorted by key.
func (t *Tally) String() string {
	var b strings.Builder
	b.WriteString("map[")
	it := t.m.Iterator()
	first := true
	for it.Next() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%s:%d", it.Key(), it.Value())
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the tally as a JSON object with keys in
// first-occurrence order.
func (t *Tally) MarshalJSON() ([]byte, error) {
	return t.m.ToJSON()
}
