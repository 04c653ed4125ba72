package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/seedconv/internal/config"
	"github/chapool/seedconv/internal/convert"
	"github/chapool/seedconv/internal/mnemonic"
	"github/chapool/seedconv/internal/util/command"
)

// ErrInvalidPhrases is returned when at least one phrase fails validation
var ErrInvalidPhrases = errors.New("invalid seed phrases found")

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the seed phrases against the wordlist without deriving keys",
		Long: `Prints one line per non-blank seed phrase, "<line>: ok" or "<line>: <reason>".
Only the word count and wordlist membership are checked, not the BIP-39 checksum.
Exits non-zero when any phrase is invalid.`,
		RunE: command.RunE(checkPhrases),
	}
}

func checkPhrases(_ context.Context, cmd *cobra.Command, cfg config.Config) error {
	phrases, err := convert.ReadLines(cfg.Input.SeedsFile)
	if err != nil {
		return err
	}

	wordlist, err := convert.ReadWordlist(cfg.Input.WordsFile)
	if err != nil {
		return err
	}

	invalid := 0
	for i, line := range phrases {
		phrase := strings.TrimSpace(line)
		if phrase == "" {
			continue
		}

		if err := mnemonic.Check(phrase, wordlist); err != nil {
			invalid++
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %v\n", i+1, err)
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d: ok\n", i+1)
	}

	if invalid > 0 {
		return errors.Wrapf(ErrInvalidPhrases, "%d invalid", invalid)
	}

	return nil
}
