package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBIP44Path(t *testing.T) {
	indices, err := parseBIP44Path(DefaultEVMPath)
	require.NoError(t, err)
	assert.Equal(t, []uint32{2147483692, 2147483708, 2147483648, 0, 0}, indices)

	indices, err = parseBIP44Path(DefaultCosmosPath)
	require.NoError(t, err)
	assert.Equal(t, []uint32{2147483692, 2147483766, 2147483648, 0, 0}, indices)

	for _, path := range []string{"", "m", "44'/60'", "m/44'/x", "m/2147483648", "m//0"} {
		_, err := parseBIP44Path(path)
		assert.Error(t, err, path)
	}
}
