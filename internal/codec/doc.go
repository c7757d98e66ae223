// Package codec converts between plaintext and the packed text format.
// Packing applies AES-256 CBC with PKCS#7 padding under a fixed key and IV,
// then base64 encodes the ciphertext. Unpacking sanitizes the input down to
// the base64 alphabet and reverses both steps.
package codec
