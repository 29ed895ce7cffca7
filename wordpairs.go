package classwork

import (
	mapset "github.com/deckarep/golang-set"
)

// PairConnector joins the two halves of a canonical symmetric pair.
const PairConnector = " & "

// ReverseWord returns word with its runes in reverse order.
func ReverseWord(word string) string {
	runes := []rune(word)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// canonicalPair joins two mutually-reversed words into a single canonical
// representation, lexicographically smaller word first, so that a pair is
// recorded identically no matter which member was encountered first.
func canonicalPair(left string, right string) string {
	if right < left {
		left, right = right, left
	}
	return left + PairConnector + right
}

// FindPairs
// Given a slice of distinct fixed-length words, returns every unordered pair
// of words that are exact reverses of each other, one canonical
// "<small> & <big>" string per pair. Words equal to their own reverse never
// pair. Membership is tested against a set built in a first pass, so the
// whole scan is linear in the number of words. Output order is
// unspecified.
func FindPairs(words []string) []string {
	lookup := mapset.NewThreadUnsafeSet()
	for idx := range words {
		lookup.Add(words[idx])
	}
	found := mapset.NewThreadUnsafeSet()
	for idx := range words {
		word := words[idx]
		reversed := ReverseWord(word)
		if reversed == word {
			continue
		}
		if lookup.Contains(reversed) {
			found.Add(canonicalPair(word, reversed))
		}
	}
	pairs := make([]string, 0, found.Cardinality())
	for _, pair := range found.ToSlice() {
		pairs = append(pairs, pair.(string))
	}
	return pairs
}
