package convert

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github/chapool/seedconv/internal/util"
	"github/chapool/seedconv/internal/wallet/derive"
)

// SingleOutputFileName is used instead of the per-scheme name in single output mode
const SingleOutputFileName = "private_keys.txt"

// ErrSchemeFailed is returned by Run when at least one scheme could not write its output
var ErrSchemeFailed = errors.New("scheme processing failed")

type Options struct {
	SeedsFile string
	WordsFile string
	OutputDir string
	// Single writes SingleOutputFileName when exactly one scheme is requested
	Single  bool
	Schemes []derive.Scheme
}

// Report summarizes the processing of one scheme
type Report struct {
	Kind    derive.Kind
	Output  string
	Total   int
	Derived int
	Invalid int
	// Err is set when the scheme failed and Output was not written
	Err error
}

// OutputFileName returns the file name results of kind are written to
func OutputFileName(kind derive.Kind) string {
	return fmt.Sprintf("private_keys_%s.txt", kind)
}

// Run reads the seeds and wordlist files once and converts them with every requested scheme.
// Input file errors abort the run before any output is written. A scheme whose derivation fails
// is reported and skipped, the remaining schemes still run; in that case Run returns the reports
// together with an error wrapping ErrSchemeFailed.
func Run(ctx context.Context, opts Options) ([]Report, error) {
	log := util.LogFromContext(ctx).With().Str("component", "convert").Logger()

	if len(opts.Schemes) == 0 {
		return nil, errors.New("no derivation scheme requested")
	}

	phrases, err := ReadLines(opts.SeedsFile)
	if err != nil {
		return nil, err
	}

	wordlist, err := ReadWordlist(opts.WordsFile)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("lines", len(phrases)).
		Int("words", wordlist.Len()).
		Msg("Loaded inputs")

	reports := make([]Report, 0, len(opts.Schemes))
	var failed []derive.Kind

	for _, scheme := range opts.Schemes {
		fileName := OutputFileName(scheme.Kind())
		if opts.Single && len(opts.Schemes) == 1 {
			fileName = SingleOutputFileName
		}

		report := Report{
			Kind:   scheme.Kind(),
			Output: filepath.Join(opts.OutputDir, fileName),
		}

		results, err := ConvertBatch(log.WithContext(ctx), phrases, wordlist, scheme)
		if err == nil {
			err = WriteResults(report.Output, results)
		}

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return reports, ctxErr
			}

			log.Error().
				Err(err).
				Str("scheme", string(scheme.Kind())).
				Msg("Error processing seed phrases")

			report.Err = err
			reports = append(reports, report)
			failed = append(failed, scheme.Kind())
			continue
		}

		report.Total = len(results)
		for _, result := range results {
			if result == Sentinel {
				report.Invalid++
			} else {
				report.Derived++
			}
		}

		log.Info().
			Str("scheme", string(scheme.Kind())).
			Str("output", report.Output).
			Int("total", report.Total).
			Int("derived", report.Derived).
			Int("invalid", report.Invalid).
			Msg("Private keys have been written")

		reports = append(reports, report)
	}

	if len(failed) > 0 {
		return reports, errors.Wrapf(ErrSchemeFailed, "%v", failed)
	}

	return reports, nil
}
