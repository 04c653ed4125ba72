package mnemonic

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github/chapool/seedconv/internal/util"
)

const (
	// ShortPhraseLength is the word count of a 128-bit entropy mnemonic
	ShortPhraseLength = 12
	// LongPhraseLength is the word count of a 256-bit entropy mnemonic
	LongPhraseLength = 24
)

var (
	ErrInvalidWordCount = errors.New("invalid mnemonic word count")
	ErrUnknownWord      = errors.New("invalid word in mnemonic")
)

// Words splits a phrase on single spaces. Repeated spaces yield empty words.
func Words(phrase string) []string {
	return strings.Split(phrase, " ")
}

// Check verifies the word count and that every word is part of wl.
// The BIP-39 checksum is not verified here.
func Check(phrase string, wl Wordlist) error {
	words := Words(phrase)
	if len(words) != ShortPhraseLength && len(words) != LongPhraseLength {
		return errors.Wrapf(ErrInvalidWordCount, "got %d words", len(words))
	}

	for _, word := range words {
		if !wl.Contains(strings.TrimSpace(word)) {
			return errors.Wrapf(ErrUnknownWord, "%q", word)
		}
	}

	return nil
}

// Validate reports whether phrase passes Check, logging a warning naming
// the offending phrase or word when it does not.
func Validate(ctx context.Context, phrase string, wl Wordlist) bool {
	err := Check(phrase, wl)
	if err == nil {
		return true
	}

	log := util.LogFromContext(ctx)

	if errors.Is(err, ErrInvalidWordCount) {
		log.Warn().
			Str("mnemonic", phrase).
			Int("words", len(Words(phrase))).
			Msg("Invalid mnemonic")
	} else {
		log.Warn().
			Str("word", unknownWord(phrase, wl)).
			Msg("Invalid word in mnemonic")
	}

	return false
}

func unknownWord(phrase string, wl Wordlist) string {
	for _, word := range Words(phrase) {
		if !wl.Contains(strings.TrimSpace(word)) {
			return word
		}
	}

	return ""
}
