package anagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	dataSet := []struct {
		raw  string
		key  string
		item string
	}{
		{"tiles", "eilst", "tiles"},
		{"Islet", "eilst", "Islet"},
		{"  STILE\n", "eilst", "STILE"},
		{"a", "a", "a"},
		{"Éclair", "acilré", "Éclair"},
	}

	for _, d := range dataSet {
		key, item, err := Normalize(d.raw)
		assert.NoError(t, err, d.raw)
		assert.Equal(t, d.key, key, d.raw)
		assert.Equal(t, d.item, item, d.raw)
	}
}

func TestNormalizeInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "two words", "abc1", "don't", "e-mail", "tab\tbed"} {
		_, _, err := Normalize(raw)
		assert.ErrorIs(t, err, ErrInvalidInput, "%q", raw)
	}
}

func TestNormalizeMergesCase(t *testing.T) {
	tree := New[string, string]()
	insertWords(tree, "Team", "mate", "MEAT")

	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, []Entry[string, string]{
		{"aemt", []string{"MEAT", "Team", "mate"}},
	}, tree.Entries())
}
