package probe

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/seedconv/internal/config"
	"github/chapool/seedconv/internal/convert"
	"github/chapool/seedconv/internal/util/command"
)

const englishWordlistSize = 2048

func newWordlist() *cobra.Command {
	return &cobra.Command{
		Use:   "wordlist",
		Short: "Reports the wordlist size and its overlap with the BIP-39 English list",
		RunE: command.RunE(probeWordlist),
	}
}

func probeWordlist(_ context.Context, cmd *cobra.Command, cfg config.Config) error {
	wordlist, err := convert.ReadWordlist(cfg.Input.WordsFile)
	if err != nil {
		return err
	}

	coverage := wordlist.EnglishCoverage()
	fmt.Fprintf(cmd.OutOrStdout(), "words: %d\nbip39 english: %d/%d\n", wordlist.Len(), coverage, englishWordlistSize)

	if coverage == englishWordlistSize {
		fmt.Fprintln(cmd.OutOrStdout(), "wordlist contains the full BIP-39 English list")
	}

	return nil
}
