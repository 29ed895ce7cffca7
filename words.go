package classwork

import (
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set"
	"github.com/jdkato/prose/v2"
)

// WordTokens extracts the distinct lowercase words from running text, in
// first-occurrence order. Tokens containing anything other than letters are
// dropped, so the output only needs a length filter before being handed to
// FindPairs.
func WordTokens(text *string) (*[]string, error) {
	doc, err := prose.NewDocument(
		*text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	seen := mapset.NewThreadUnsafeSet()
	words := make([]string, 0, 64)
	for _, tok := range doc.Tokens() {
		word := strings.ToLower(tok.Text)
		if !isAllLetters(word) {
			continue
		}
		if !seen.Contains(word) {
			seen.Add(word)
			words = append(words, word)
		}
	}
	return &words, nil
}

// WordsOfLength filters words down to those of exactly runeLen runes.
func WordsOfLength(words []string, runeLen int) []string {
	filtered := make([]string, 0, len(words))
	for idx := range words {
		if len([]rune(words[idx])) == runeLen {
			filtered = append(filtered, words[idx])
		}
	}
	return filtered
}

func isAllLetters(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
