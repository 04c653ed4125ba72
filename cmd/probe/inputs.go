package probe

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/seedconv/internal/config"
	"github/chapool/seedconv/internal/convert"
	"github/chapool/seedconv/internal/util"
	"github/chapool/seedconv/internal/util/command"
)

func newInputs() *cobra.Command {
	return &cobra.Command{
		Use:   "inputs",
		Short: "Checks that the seeds and wordlist files exist and are readable",
		Long: `Reads the seeds and wordlist files and reports the number of lines of each.
Exits non-zero if either file is missing or unreadable.`,
		RunE: command.RunE(probeInputs),
	}
}

func probeInputs(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	log := util.LogFromContext(ctx).With().Str("component", "probe").Logger()

	for _, path := range []string{cfg.Input.SeedsFile, cfg.Input.WordsFile} {
		lines, err := convert.ReadLines(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("Input probe failed")
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d lines\n", path, len(lines))
	}

	return nil
}
