package convert_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/seedconv/internal/convert"
)

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\r\n\ntwo\n"), 0o600))

	lines, err := convert.ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one\r", "", "two", ""}, lines)
}

func TestReadLinesMissing(t *testing.T) {
	_, err := convert.ReadLines(filepath.Join(t.TempDir(), "seeds.txt"))
	require.Error(t, err)

	assert.True(t, errors.Is(err, convert.ErrMissingFile))
	assert.False(t, errors.Is(err, convert.ErrUnreadableFile))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, "Error: seeds.txt file not found.", err.Error())
}

func TestReadLinesUnreadable(t *testing.T) {
	// reading a directory fails with something other than not-exist
	_, err := convert.ReadLines(t.TempDir())
	require.Error(t, err)

	assert.True(t, errors.Is(err, convert.ErrUnreadableFile))
	assert.False(t, errors.Is(err, convert.ErrMissingFile))

	var fileErr *convert.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, "reading", fileErr.Op)
}

func TestReadWordlist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("abandon \n ability\nable"), 0o600))

	wl, err := convert.ReadWordlist(path)
	require.NoError(t, err)
	assert.Equal(t, 3, wl.Len())
	assert.True(t, wl.Contains("ability"))
}

func TestWriteResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "private_keys_evm.txt")

	require.NoError(t, convert.WriteResults(path, []string{"0xabc", convert.Sentinel}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0xabc\nnone", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteResultsRestrictsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "private_keys_evm.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale\nstale\nstale"), 0o600))
	require.NoError(t, os.Chmod(path, 0o644))

	require.NoError(t, convert.WriteResults(path, []string{convert.Sentinel}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, convert.Sentinel, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteResultsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "private_keys_cosmos.txt")

	require.NoError(t, convert.WriteResults(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
