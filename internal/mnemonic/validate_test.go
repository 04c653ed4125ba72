package mnemonic_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/seedconv/internal/mnemonic"
	"github/chapool/seedconv/internal/test"
)

func TestCheck(t *testing.T) {
	english := mnemonic.NewWordlist(test.EnglishWordlist())

	tests := []struct {
		name    string
		phrase  string
		wantErr error
	}{
		{name: "12 words", phrase: test.ValidShortPhrase},
		{name: "24 words", phrase: test.ValidLongPhrase},
		{name: "bad checksum is accepted", phrase: test.BadChecksumPhrase},
		{name: "11 words", phrase: test.ElevenWordPhrase, wantErr: mnemonic.ErrInvalidWordCount},
		{name: "13 words", phrase: test.ValidShortPhrase + " zoo", wantErr: mnemonic.ErrInvalidWordCount},
		{name: "double space changes count", phrase: strings.Replace(test.ValidShortPhrase, " ", "  ", 1), wantErr: mnemonic.ErrInvalidWordCount},
		{name: "tab is not a separator", phrase: strings.Replace(test.ValidShortPhrase, " ", "\t", 1), wantErr: mnemonic.ErrInvalidWordCount},
		{name: "unknown word", phrase: strings.Replace(test.ValidShortPhrase, "about", "aboot", 1), wantErr: mnemonic.ErrUnknownWord},
		{name: "case sensitive", phrase: strings.Replace(test.ValidShortPhrase, "about", "About", 1), wantErr: mnemonic.ErrUnknownWord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mnemonic.Check(tt.phrase, english)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())
		})
	}
}

func TestCheckMembershipOnly(t *testing.T) {
	// 24 words from a made-up list are valid as long as every word is a member
	wl := mnemonic.NewWordlist([]string{"alpha", "beta"})
	phrase := strings.TrimSpace(strings.Repeat("alpha beta ", 12))

	require.NoError(t, mnemonic.Check(phrase, wl))
}

func TestValidateLogsDiagnostics(t *testing.T) {
	english := mnemonic.NewWordlist(test.EnglishWordlist())

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	assert.True(t, mnemonic.Validate(ctx, test.ValidShortPhrase, english))
	assert.Empty(t, buf.String())

	assert.False(t, mnemonic.Validate(ctx, test.ElevenWordPhrase, english))
	assert.Contains(t, buf.String(), "Invalid mnemonic")
	assert.Contains(t, buf.String(), test.ElevenWordPhrase)

	buf.Reset()
	assert.False(t, mnemonic.Validate(ctx, strings.Replace(test.ValidShortPhrase, "about", "aboot", 1), english))
	assert.Contains(t, buf.String(), "Invalid word in mnemonic")
	assert.Contains(t, buf.String(), `"word":"aboot"`)
}
