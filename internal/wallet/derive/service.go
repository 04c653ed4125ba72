package derive

import (
	"context"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github/chapool/seedconv/internal/wallet/seed"
)

const privateKeyLength = 32

// New returns the Scheme for kind
//
//nolint:ireturn // Returning interface is intentional, callers only need Scheme
func New(kind Kind, opts ...Option) (Scheme, error) {
	switch kind {
	case KindEVM:
		return NewEVM(opts...), nil
	case KindCosmos:
		return NewCosmos(opts...), nil
	default:
		return nil, errors.Errorf("unsupported derivation scheme: %s", kind)
	}
}

// Select returns the requested schemes in processing order, EVM first
func Select(evm bool, cosmos bool, opts ...Option) []Scheme {
	requested := map[Kind]bool{KindEVM: evm, KindCosmos: cosmos}

	schemes := make([]Scheme, 0, len(requested))
	for _, kind := range []Kind{KindEVM, KindCosmos} {
		if !requested[kind] {
			continue
		}

		scheme, err := New(kind, opts...)
		if err != nil {
			// both kinds are known to New
			panic(err)
		}
		schemes = append(schemes, scheme)
	}

	return schemes
}

// derivePrivateKey derives the raw secp256k1 private key at path
// WARNING: Caller must clear the private key after use
func derivePrivateKey(_ context.Context, mnemonic string, passphrase string, path string) ([]byte, error) {
	indices, err := parseBIP44Path(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse BIP44 path")
	}

	seedManager := seed.NewManager()
	if err := seedManager.Initialize(mnemonic, passphrase); err != nil {
		return nil, errors.Wrap(err, "failed to initialize seed")
	}
	defer seedManager.Clear()

	masterKey, err := bip32.NewMasterKey(seedManager.GetSeed())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	key := masterKey
	for _, index := range indices {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive child key at index %d", index)
		}
	}

	return common.LeftPadBytes(key.Key, privateKeyLength), nil
}

// parseBIP44Path parses a BIP44 path string into indices
// Example: "m/44'/60'/0'/0/0" -> [2147483692, 2147483708, 2147483648, 0, 0]
func parseBIP44Path(path string) ([]uint32, error) {
	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] != "m" {
		return nil, errors.Errorf("invalid BIP44 path: %s", path)
	}

	indices := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'")
		part = strings.TrimSuffix(part, "'")

		parsed, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return nil, errors.Errorf("invalid path segment: %s", part)
		}

		index := uint32(parsed)
		if hardened {
			index += bip32.FirstHardenedChild
		}

		indices = append(indices, index)
	}

	return indices, nil
}
