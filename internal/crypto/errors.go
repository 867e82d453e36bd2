package crypto

import "errors"

var (
	// ErrSecretLength is returned when the secret is shorter than SecretLength characters.
	ErrSecretLength = errors.New("secret must be at least 32 characters")
	// ErrCipherInit is returned when the underlying cipher cannot be constructed.
	// It indicates a programming defect rather than bad input and is never retried.
	ErrCipherInit = errors.New("cipher initialization failed")
	// ErrInvalidPadding is returned when the final decrypted block does not end in
	// valid PKCS#7 padding. This is the only detectable sign of a wrong secret or
	// corrupted ciphertext.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when the ciphertext length is not a positive
	// multiple of the AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
	// ErrFinalized is returned when Update or Finalize is called on a context that
	// has already been finalized.
	ErrFinalized = errors.New("cipher context already finalized")
)
