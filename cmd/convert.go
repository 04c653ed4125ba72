package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/seedconv/internal/config"
	"github/chapool/seedconv/internal/convert"
	"github/chapool/seedconv/internal/util"
	"github/chapool/seedconv/internal/util/command"
	"github/chapool/seedconv/internal/wallet/derive"
)

const (
	evmFlag    string = "evm"
	cosmosFlag string = "cosmos"
	allFlag    string = "all"
	strictFlag string = "strict"
)

//nolint:stylecheck // user facing message
var errNoScheme = errors.New("Please specify --evm, --cosmos, or --all.")

func initConvert(cmd *cobra.Command) {
	cmd.Flags().Bool(evmFlag, false, "Process EVM seed phrases")
	cmd.Flags().Bool(cosmosFlag, false, "Process Cosmos seed phrases")
	cmd.Flags().Bool(allFlag, false, "Process both EVM and Cosmos seed phrases")
	cmd.Flags().String("out-dir", ".", "Directory the private key files are written to")
	cmd.Flags().Bool("single", false, "Write private_keys.txt when a single scheme is requested")
	cmd.Flags().Bool(strictFlag, false, "Exit non-zero when a scheme fails to derive its keys")

	cmd.RunE = command.RunE(runConvert)
}

func runConvert(ctx context.Context, cmd *cobra.Command, cfg config.Config) error {
	all, _ := cmd.Flags().GetBool(allFlag)
	doEVM, _ := cmd.Flags().GetBool(evmFlag)
	doCosmos, _ := cmd.Flags().GetBool(cosmosFlag)
	strict, _ := cmd.Flags().GetBool(strictFlag)

	doEVM = doEVM || all
	doCosmos = doCosmos || all
	if !doEVM && !doCosmos {
		return errNoScheme
	}

	reports, err := convert.Run(ctx, convert.Options{
		SeedsFile: cfg.Input.SeedsFile,
		WordsFile: cfg.Input.WordsFile,
		OutputDir: cfg.Output.Dir,
		Single:    cfg.Output.Single,
		Schemes:   derive.Select(doEVM, doCosmos, derive.WithPassphrase(cfg.Derive.Passphrase)),
	})
	if err != nil && !errors.Is(err, convert.ErrSchemeFailed) {
		return err
	}

	for _, report := range reports {
		if report.Err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s private keys have been written to %s\n", report.Kind, report.Output)
		}
	}

	if err != nil {
		if strict {
			return err
		}
		util.LogFromContext(ctx).Warn().Err(err).Msg("Some schemes were skipped")
	}

	return nil
}
