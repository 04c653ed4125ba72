package derive

import "context"

// Kind names a derivation scheme
type Kind string

const (
	KindEVM    Kind = "evm"
	KindCosmos Kind = "cosmos"
)

const (
	// DefaultEVMPath is the first account of the Ethereum BIP-44 tree
	DefaultEVMPath = "m/44'/60'/0'/0/0"
	// DefaultCosmosPath is the first account of the Cosmos Hub BIP-44 tree
	DefaultCosmosPath = "m/44'/118'/0'/0/0"
	// CosmosHRP is the bech32 prefix of Cosmos Hub account addresses
	CosmosHRP = "cosmos"
)

// Scheme turns a mnemonic into a hex encoded private key
type Scheme interface {
	// Kind identifies the scheme
	Kind() Kind

	// Derive derives the private key of the scheme's default account.
	// WARNING: the result is secret material
	Derive(ctx context.Context, mnemonic string) (string, error)
}

type options struct {
	passphrase string
	path       string
}

type Option func(*options)

// WithPassphrase sets the BIP-39 passphrase (empty by default)
func WithPassphrase(passphrase string) Option {
	return func(o *options) {
		o.passphrase = passphrase
	}
}

// WithPath overrides the scheme's default BIP-44 path
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

func newOptions(defaultPath string, opts []Option) options {
	o := options{path: defaultPath}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
