package convert

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github/chapool/seedconv/internal/mnemonic"
	"github/chapool/seedconv/internal/wallet/derive"
)

// Sentinel replaces the key of a phrase that failed validation
const Sentinel = "none"

// ConvertBatch derives one entry per non-blank line of phrases, in input order.
// Lines are trimmed, blank lines produce no entry, invalid phrases produce Sentinel.
// A derivation error aborts the batch.
func ConvertBatch(ctx context.Context, phrases []string, wordlist mnemonic.Wordlist, scheme derive.Scheme) ([]string, error) {
	results := make([]string, 0, len(phrases))

	for i, line := range phrases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		phrase := strings.TrimSpace(line)
		if phrase == "" {
			continue
		}

		if !mnemonic.Validate(ctx, phrase, wordlist) {
			results = append(results, Sentinel)
			continue
		}

		key, err := scheme.Derive(ctx, phrase)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive %s key for line %d", scheme.Kind(), i+1)
		}

		results = append(results, key)
	}

	return results, nil
}
