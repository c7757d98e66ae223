package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Codec packs and unpacks data with a fixed key and IV.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	// block is the AES-256 cipher built from the key
	block cipher.Block

	// iv is reused for every message
	iv []byte
}

// New creates a Codec from the given material.
func New(material Material) (*Codec, error) {
	if err := material.validate(); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(material.Key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	copy(iv, material.IV)

	return &Codec{block: block, iv: iv}, nil
}

// NewDefault creates a Codec using DefaultMaterial.
func NewDefault() (*Codec, error) {
	material, err := DefaultMaterial()
	if err != nil {
		return nil, err
	}

	return New(material)
}

// Encrypt pads plain with PKCS#7 and encrypts it using AES in CBC mode.
// The output is always 1 to 16 bytes longer than the input.
func (c *Codec) Encrypt(plain []byte) []byte {
	padded := pkcs7Pad(plain, aes.BlockSize)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(ciphertext, padded)

	return ciphertext
}

// Decrypt decrypts ciphertext using AES in CBC mode and removes the PKCS#7 padding.
// The padding is the only integrity signal of the format: a corrupted final block
// is usually reported as ErrInvalidPadding, corruption elsewhere goes undetected.
func (c *Codec) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidCiphertextLength, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext)
	if err != nil {
		return nil, fmt.Errorf("removing padding: %w", err)
	}

	return unpadded, nil
}

// Pack encrypts plain and returns the ciphertext as base64 text.
func (c *Codec) Pack(plain []byte) string {
	return EncodeBase64(c.Encrypt(plain))
}

// Unpack sanitizes raw, decodes it from base64 and decrypts the result.
func (c *Codec) Unpack(raw []byte) ([]byte, error) {
	ciphertext, err := DecodeBase64(Sanitize(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	plaintext, err := c.Decrypt(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}

	return plaintext, nil
}
