package seed

import (
	"crypto/sha512"
	"sync"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

// ErrInvalidMnemonic is returned for phrases rejected by the BIP-39 English checksum
var ErrInvalidMnemonic = errors.New("invalid BIP-39 mnemonic")

// manager implements seed management with thread-safe access
type manager struct {
	seed        []byte
	mu          sync.RWMutex
	initialized bool
}

// NewManager creates a new seed Manager
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewManager() Manager {
	return &manager{
		seed:        nil,
		initialized: false,
	}
}

// Initialize validates the mnemonic against the BIP-39 English list and checksum,
// then converts it to a seed using PBKDF2
func (m *manager) Initialize(mnemonic string, passphrase string) error {
	if _, err := bip39.MnemonicToByteArray(mnemonic); err != nil {
		return errors.Wrapf(ErrInvalidMnemonic, "%v", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// BIP39: seed = PBKDF2(mnemonic, "mnemonic" + passphrase, 2048, 64, SHA512)
	const (
		pbkdf2Iterations = 2048 // BIP39 standard iterations
		pbkdf2KeyLength  = 64   // BIP39 standard key length (512 bits)
	)

	m.wipe()
	m.seed = pbkdf2.Key(
		[]byte(mnemonic),
		[]byte("mnemonic"+passphrase),
		pbkdf2Iterations,
		pbkdf2KeyLength,
		sha512.New,
	)
	m.initialized = true

	return nil
}

// GetSeed gets the seed (returns a copy to prevent external modification)
func (m *manager) GetSeed() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized || m.seed == nil {
		return nil
	}

	seedCopy := make([]byte, len(m.seed))
	copy(seedCopy, m.seed)
	return seedCopy
}

// Clear clears the seed from memory
func (m *manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.wipe()
	m.initialized = false
}

func (m *manager) wipe() {
	for i := range m.seed {
		m.seed[i] = 0
	}
	m.seed = nil
}
