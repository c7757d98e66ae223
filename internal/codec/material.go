package codec

import (
	"crypto/aes"
	"fmt"

	"github.com/idelchi/gogen/pkg/key"
)

const (
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32

	// Fixed material shared by every packed file.
	keyHex = "05F78F5953BFABB1BE2D840CB0E13DB65F7FA5EFC97FBAA6300CA4E533FA717C"
	ivHex  = "e93ecc7c6e394f3d432282ef185cc3b1"
)

// Material is the key and IV used for every encryption and decryption.
type Material struct {
	Key []byte
	IV  []byte
}

// DefaultMaterial returns the fixed key and IV compatible with existing packed files.
func DefaultMaterial() (Material, error) {
	k, err := key.FromHex(keyHex)
	if err != nil {
		return Material{}, fmt.Errorf("decoding key: %w", err)
	}

	iv, err := key.FromHex(ivHex)
	if err != nil {
		return Material{}, fmt.Errorf("decoding IV: %w", err)
	}

	return Material{Key: k, IV: iv}, nil
}

// validate checks the key and IV lengths.
func (m Material) validate() error {
	if len(m.Key) != KeySize {
		return fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidMaterial, KeySize, len(m.Key))
	}

	if len(m.IV) != aes.BlockSize {
		return fmt.Errorf("%w: IV must be %d bytes, got %d", ErrInvalidMaterial, aes.BlockSize, len(m.IV))
	}

	return nil
}
