package codec

import "errors"

var (
	// ErrMalformedBase64 is returned when the sanitized text is not valid padded base64.
	ErrMalformedBase64 = errors.New("malformed base64")
	// ErrInvalidCiphertextLength is returned when ciphertext is empty or not aligned with the AES block size.
	ErrInvalidCiphertextLength = errors.New("ciphertext is not a non-zero multiple of block size")
	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidMaterial is returned when the key or IV has the wrong length.
	ErrInvalidMaterial = errors.New("invalid key material")
)
