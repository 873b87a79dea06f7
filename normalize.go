package anagram

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Normalize turns a raw word into its anagram key, the lowercased letters in
// ascending order, and the trimmed word itself as the item. Empty words and
// words with anything but letters are rejected with ErrInvalidInput.
func Normalize(raw string) (key, item string, err error) {
	item = strings.TrimSpace(raw)
	if item == "" {
		return "", "", fmt.Errorf("empty string: %w", ErrInvalidInput)
	}

	runes := []rune(strings.ToLower(item))
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return "", "", fmt.Errorf("%q has non-alphabetic character %q: %w", item, r, ErrInvalidInput)
		}
	}
	slices.Sort(runes)

	return string(runes), item, nil
}
