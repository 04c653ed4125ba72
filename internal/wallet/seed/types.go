package seed

// Manager holds the BIP-39 seed of a single mnemonic for the duration of a derivation
type Manager interface {
	// Initialize checks the mnemonic checksum and stretches it into the seed
	Initialize(mnemonic string, passphrase string) error

	// GetSeed gets the seed (from memory)
	GetSeed() []byte

	// Clear clears the seed from memory
	Clear()
}
