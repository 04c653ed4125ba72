package seed_test

import (
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/seedconv/internal/wallet/seed"
)

//nolint:dupword // BIP-39 test vector
const abandonAbout = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		want       string
	}{
		{
			name:       "no passphrase",
			passphrase: "",
			want:       "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		},
		{
			name:       "TREZOR passphrase",
			passphrase: "TREZOR",
			want:       "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := seed.NewManager()
			assert.Nil(t, m.GetSeed())

			require.NoError(t, m.Initialize(abandonAbout, tt.passphrase))
			assert.Equal(t, tt.want, hex.EncodeToString(m.GetSeed()))
		})
	}
}

func TestInitializeRejectsBadChecksum(t *testing.T) {
	m := seed.NewManager()

	//nolint:dupword // checksum word replaced
	err := m.Initialize("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, seed.ErrInvalidMnemonic))
	assert.Nil(t, m.GetSeed())
}

func TestGetSeedReturnsCopy(t *testing.T) {
	m := seed.NewManager()
	require.NoError(t, m.Initialize(abandonAbout, ""))

	s := m.GetSeed()
	s[0] ^= 0xff

	assert.NotEqual(t, s, m.GetSeed())
}

func TestClear(t *testing.T) {
	m := seed.NewManager()
	require.NoError(t, m.Initialize(abandonAbout, ""))

	m.Clear()

	assert.Nil(t, m.GetSeed())
}
