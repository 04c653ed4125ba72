package mnemonic

import (
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// Wordlist is the set of words a seed phrase may be built from.
// Membership is exact: entries are trimmed when the list is built, lookups are not normalized.
type Wordlist map[string]struct{}

// NewWordlist builds a Wordlist from raw lines, trimming surrounding whitespace of each entry
func NewWordlist(lines []string) Wordlist {
	wl := make(Wordlist, len(lines))
	for _, line := range lines {
		wl[strings.TrimSpace(line)] = struct{}{}
	}

	return wl
}

// Contains reports whether word is part of the list
func (wl Wordlist) Contains(word string) bool {
	_, ok := wl[word]
	return ok
}

// Len returns the number of distinct entries
func (wl Wordlist) Len() int {
	return len(wl)
}

// EnglishCoverage returns how many words of the BIP-39 English list are present in wl
func (wl Wordlist) EnglishCoverage() int {
	count := 0
	for _, word := range bip39.GetWordList() {
		if wl.Contains(word) {
			count++
		}
	}

	return count
}
