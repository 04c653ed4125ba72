package test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"
)

const (
	SeedsFileName = "seeds.txt"
	WordsFileName = "words.txt"
)

//nolint:dupword // BIP-39 test vectors
const (
	// ValidShortPhrase has a valid checksum, its EVM key is ValidShortPhraseEVMKey
	ValidShortPhrase       = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	ValidShortPhraseEVMKey = "0x1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727"
	// ValidShortPhraseCosmosKey is the key of ValidShortPhrase at m/44'/118'/0'/0/0
	ValidShortPhraseCosmosKey = "c4a48e2fce1481cd3294b4490f6678090ea98d3d0e5cd984558ab0968741b104"
	// ValidLongPhrase is the 24 word counterpart of ValidShortPhrase
	ValidLongPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
	// BadChecksumPhrase only uses list words but fails the BIP-39 checksum
	BadChecksumPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
	// ElevenWordPhrase has an invalid word count
	ElevenWordPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

// EnglishWordlist returns the BIP-39 English list as words.txt lines
func EnglishWordlist() []string {
	return bip39.GetWordList()
}

// WithTestInputs writes seeds.txt and words.txt into a fresh temp dir and passes the dir to closure
func WithTestInputs(t *testing.T, seeds []string, words []string, closure func(dir string)) {
	t.Helper()

	dir := t.TempDir()
	WriteLines(t, filepath.Join(dir, SeedsFileName), seeds)
	WriteLines(t, filepath.Join(dir, WordsFileName), words)

	closure(dir)
}

// WriteLines writes lines newline-joined with a trailing newline, as editors save them
func WriteLines(t *testing.T, path string, lines []string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
