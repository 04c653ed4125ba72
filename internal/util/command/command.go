package command

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github/chapool/seedconv/internal/config"
	"github/chapool/seedconv/internal/util"
)

const (
	VerboseFlag = "verbose"
	EnvFileFlag = "env-file"
)

// NewSubcommandGroup returns a command that only groups subcommands and prints help when run directly
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Subcommands for " + use,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				util.LogFromContext(cmd.Context()).Error().Err(err).Msg("Failed to print help")
			}
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// LoadConfig resolves the configuration for cmd: the optional .env file, SEEDCONV_* env vars,
// then the flags bound by config.Load. --verbose forces debug logging.
func LoadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString(EnvFileFlag)
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, errors.Wrap(err, "failed to load config")
	}

	if verbose, _ := cmd.Flags().GetBool(VerboseFlag); verbose {
		cfg.Logger.Level = zerolog.DebugLevel
	}

	return cfg, nil
}

// WithConfig sets up logging from cfg and runs f with a context carrying the logger
func WithConfig(ctx context.Context, cfg config.Config, f func(ctx context.Context, cfg config.Config) error) error {
	logger := util.SetupLogger(os.Stderr, cfg.Logger.Level, cfg.Logger.PrettyPrintConsole)

	return f(logger.WithContext(ctx), cfg)
}

// RunE adapts f into a cobra RunE, loading the configuration from the command's flags
func RunE(f func(ctx context.Context, cmd *cobra.Command, cfg config.Config) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := LoadConfig(cmd)
		if err != nil {
			return err
		}

		return WithConfig(cmd.Context(), cfg, func(ctx context.Context, cfg config.Config) error {
			return f(ctx, cmd, cfg)
		})
	}
}
