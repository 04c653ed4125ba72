package derive

import (
	"context"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"
	"github/chapool/seedconv/internal/util"
)

// Cosmos derives Cosmos SDK secp256k1 keys, hex encoded without prefix
type Cosmos struct {
	opts options
}

func NewCosmos(opts ...Option) *Cosmos {
	return &Cosmos{opts: newOptions(DefaultCosmosPath, opts)}
}

func (c *Cosmos) Kind() Kind {
	return KindCosmos
}

func (c *Cosmos) Derive(ctx context.Context, mnemonic string) (string, error) {
	privateKey, err := derivePrivateKey(ctx, mnemonic, c.opts.passphrase, c.opts.path)
	if err != nil {
		return "", err
	}
	defer clear(privateKey)

	if e := util.LogFromContext(ctx).Debug(); e.Enabled() {
		e = e.Str("scheme", string(KindCosmos)).Str("path", c.opts.path)

		address, err := CosmosAddress(privateKey, CosmosHRP)
		if err != nil {
			e.Err(err).Msg("Failed to compute account address")
		} else {
			e.Str("address", address).Msg("Derived account")
		}
	}

	return hex.EncodeToString(privateKey), nil
}

// CosmosAddress returns the bech32 account address of a raw secp256k1 private key:
// bech32(hrp, RIPEMD160(SHA256(compressed public key)))
func CosmosAddress(privateKey []byte, hrp string) (string, error) {
	_, publicKey := btcec.PrivKeyFromBytes(privateKey)

	converted, err := bech32.ConvertBits(btcutil.Hash160(publicKey.SerializeCompressed()), 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "failed to convert address bits")
	}

	address, err := bech32.Encode(hrp, converted)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode bech32 address")
	}

	return address, nil
}
