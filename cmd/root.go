package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/seedconv/cmd/check"
	"github/chapool/seedconv/cmd/probe"
	"github/chapool/seedconv/internal/config"
	"github/chapool/seedconv/internal/util/command"
)

// NewRootCmd builds the base command, which runs the conversion, with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: config.GetFormattedBuildArgs(),
		Use:     "seedconv",
		Short:   "Convert BIP-39 seed phrases to EVM and Cosmos private keys",
		Long: fmt.Sprintf(`%v

Reads one seed phrase per line from the seeds file, checks each against the
wordlist and writes the derived private keys, one per non-blank line, to
private_keys_evm.txt and/or private_keys_cosmos.txt. Invalid phrases are
written as "none".
Configuration is read from flags, SEEDCONV_* env vars and an optional .env file.`, config.ModuleName),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.PersistentFlags().String("seeds", "seeds.txt", "Seed phrases file, one phrase per line")
	rootCmd.PersistentFlags().String("words", "words.txt", "Wordlist file, one word per line")
	rootCmd.PersistentFlags().String(command.EnvFileFlag, ".env", "Optional env file with SEEDCONV_* variables")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP(command.VerboseFlag, "v", false, "Enable debug logging")

	initConvert(rootCmd)

	// attach the subcommands
	rootCmd.AddCommand(
		check.New(),
		probe.New(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
