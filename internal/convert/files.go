package convert

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github/chapool/seedconv/internal/mnemonic"
)

var (
	// ErrMissingFile matches FileErrors caused by an absent file
	ErrMissingFile = errors.New("file not found")
	// ErrUnreadableFile matches FileErrors caused by any other I/O failure
	ErrUnreadableFile = errors.New("file unreadable")
)

// FileError describes a failed read or write of one of the tool's files
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("Error: %s file not found.", filepath.Base(e.Path))
	}

	return fmt.Sprintf("Error %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	//nolint:errorlint // sentinel identity comparison
	switch target {
	case ErrMissingFile:
		return errors.Is(e.Err, fs.ErrNotExist)
	case ErrUnreadableFile:
		return !errors.Is(e.Err, fs.ErrNotExist)
	default:
		return false
	}
}

// ReadLines reads the whole file and splits it on "\n". Lines are returned untrimmed.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "reading", Path: path, Err: err}
	}

	return strings.Split(string(data), "\n"), nil
}

// ReadWordlist builds the wordlist from a file with one word per line
func ReadWordlist(path string) (mnemonic.Wordlist, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	return mnemonic.NewWordlist(lines), nil
}

// WriteResults writes results newline-joined, without a trailing newline.
// The file holds private keys and is only readable by the owner, including when it already existed.
func WriteResults(path string, results []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return &FileError{Op: "creating directory for", Path: path, Err: err}
		}
	}

	if err := os.WriteFile(path, []byte(strings.Join(results, "\n")), 0o600); err != nil {
		return &FileError{Op: "writing", Path: path, Err: err}
	}

	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(path, 0o600); err != nil {
		return &FileError{Op: "restricting permissions of", Path: path, Err: err}
	}

	return nil
}
