package derive

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/seedconv/internal/util"
)

// EVM derives Ethereum-style keys, hex encoded with a 0x prefix
type EVM struct {
	opts options
}

func NewEVM(opts ...Option) *EVM {
	return &EVM{opts: newOptions(DefaultEVMPath, opts)}
}

func (e *EVM) Kind() Kind {
	return KindEVM
}

func (e *EVM) Derive(ctx context.Context, mnemonic string) (string, error) {
	privateKey, err := derivePrivateKey(ctx, mnemonic, e.opts.passphrase, e.opts.path)
	if err != nil {
		return "", err
	}
	defer clear(privateKey)

	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to convert to ECDSA private key")
	}

	if ev := util.LogFromContext(ctx).Debug(); ev.Enabled() {
		ev.Str("scheme", string(KindEVM)).
			Str("path", e.opts.path).
			Str("address", crypto.PubkeyToAddress(ecdsaPrivateKey.PublicKey).Hex()).
			Msg("Derived account")
	}

	return hexutil.Encode(crypto.FromECDSA(ecdsaPrivateKey)), nil
}
