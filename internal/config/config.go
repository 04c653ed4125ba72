package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const envPrefix = "SEEDCONV"

// Keys understood by Load, both as SEEDCONV_<KEY> env vars (dots become underscores) and as bound flags
const (
	KeySeedsFile          = "seeds_file"
	KeyWordsFile          = "words_file"
	KeyOutputDir          = "output.dir"
	KeyOutputSingle       = "output.single"
	KeyLoggerLevel        = "logger.level"
	KeyLoggerPrettyPrint  = "logger.pretty_print_console"
	KeyDerivePassphrase   = "derive.passphrase"
	defaultSeedsFile      = "seeds.txt"
	defaultWordsFile      = "words.txt"
	defaultLoggerLevel    = "info"
	defaultDotEnvFileName = ".env"
)

type Input struct {
	SeedsFile string `json:"seeds_file"`
	WordsFile string `json:"words_file"`
}

type Output struct {
	Dir string `json:"dir"`
	// Single writes private_keys.txt when exactly one scheme is requested
	Single bool `json:"single"`
}

type Logger struct {
	Level              zerolog.Level `json:"level"`
	PrettyPrintConsole bool          `json:"pretty_print_console"`
}

type Derive struct {
	// BIP-39 passphrase, empty for the standard derivation
	Passphrase string `json:"-"`
}

type Config struct {
	Input  Input
	Output Output
	Logger Logger
	Derive Derive
}

// Load resolves the configuration with precedence flags > env > defaults.
// Flags in fs whose name matches an entry of flagKeys are bound to the corresponding key.
// An unparsable log level falls back to info and is reported as error.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySeedsFile, defaultSeedsFile)
	v.SetDefault(KeyWordsFile, defaultWordsFile)
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyOutputSingle, false)
	v.SetDefault(KeyLoggerLevel, defaultLoggerLevel)
	v.SetDefault(KeyLoggerPrettyPrint, true)
	v.SetDefault(KeyDerivePassphrase, "")

	if fs != nil {
		for flag, key := range flagKeys {
			f := fs.Lookup(flag)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, errors.Wrapf(err, "failed to bind flag %q", flag)
			}
		}
	}

	level, levelErr := zerolog.ParseLevel(v.GetString(KeyLoggerLevel))
	if levelErr != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	cfg := Config{
		Input: Input{
			SeedsFile: v.GetString(KeySeedsFile),
			WordsFile: v.GetString(KeyWordsFile),
		},
		Output: Output{
			Dir:    v.GetString(KeyOutputDir),
			Single: v.GetBool(KeyOutputSingle),
		},
		Logger: Logger{
			Level:              level,
			PrettyPrintConsole: v.GetBool(KeyLoggerPrettyPrint),
		},
		Derive: Derive{
			Passphrase: v.GetString(KeyDerivePassphrase),
		},
	}

	if levelErr != nil {
		return cfg, errors.Wrapf(levelErr, "invalid %s", KeyLoggerLevel)
	}

	return cfg, nil
}

// flagKeys maps CLI flag names to configuration keys
var flagKeys = map[string]string{
	"seeds":     KeySeedsFile,
	"words":     KeyWordsFile,
	"out-dir":   KeyOutputDir,
	"single":    KeyOutputSingle,
	"log-level": KeyLoggerLevel,
}

// LoadDotEnv loads env vars from path without overriding ones already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = defaultDotEnvFileName
	}

	if err := gotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "failed to load %s", path)
	}

	return nil
}
