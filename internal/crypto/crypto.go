package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Direction selects between encryption and decryption. It is fixed at
// construction time.
type Direction int

const (
	// Encrypt processes plaintext into ciphertext.
	Encrypt Direction = iota
	// Decrypt processes ciphertext back into plaintext.
	Decrypt
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}

	return "encrypt"
}

// Crypto is a single-use cipher context: AES-128-CBC with PKCS#7 padding,
// keyed and seeded from the derived secret material. It buffers sub-block
// input across Update calls and becomes unusable after Finalize.
//
// A Crypto is not safe for concurrent use; it must be exclusively owned by
// one operation at a time.
type Crypto struct {
	mode      cipher.BlockMode
	direction Direction

	// buf holds input that cannot be processed yet: the sub-block remainder,
	// plus one full held-back block when decrypting (it may carry the padding).
	buf []byte

	bufferSize int
	finalized  bool
}

// Option configures a Crypto.
type Option func(*Crypto)

// WithBufferSize sets the chunk size used by Process and Execute when reading
// the source stream. It affects throughput only, never the output bytes.
// Sizes below one are ignored.
func WithBufferSize(size int) Option {
	return func(c *Crypto) {
		if size > 0 {
			c.bufferSize = size
		}
	}
}

// New creates a cipher context for the given secret and direction.
// It fails with ErrSecretLength (or a hex decoding error) on a bad secret,
// and with ErrCipherInit if the cipher itself cannot be constructed.
func New(secret string, direction Direction, opts ...Option) (*Crypto, error) {
	material, err := Derive(secret)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(material)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipherInit, err)
	}

	c := &Crypto{
		direction:  direction,
		buf:        make([]byte, 0, 2*aes.BlockSize),
		bufferSize: defaultBufferSize,
	}

	// The derived material doubles as the IV for compatibility with
	// existing encrypted files. See the package documentation.
	if direction == Decrypt {
		c.mode = cipher.NewCBCDecrypter(block, material)
	} else {
		c.mode = cipher.NewCBCEncrypter(block, material)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Update continues a multiple-part operation, processing another part of the
// input. It returns all bytes that can be emitted so far, which may be empty
// or shorter than the input due to internal buffering. An empty input yields
// an empty output.
func (c *Crypto) Update(p []byte) ([]byte, error) {
	if c.finalized {
		return nil, ErrFinalized
	}

	c.buf = append(c.buf, p...)

	keep := len(c.buf) % aes.BlockSize
	if c.direction == Decrypt && keep == 0 && len(c.buf) > 0 {
		// Hold back one complete block: if no more input arrives it is the
		// padding block and belongs to Finalize.
		keep = aes.BlockSize
	}

	n := len(c.buf) - keep
	if n == 0 {
		return nil, nil
	}

	out := make([]byte, n)
	c.mode.CryptBlocks(out, c.buf[:n])
	c.buf = append(c.buf[:0], c.buf[n:]...)

	return out, nil
}

// Finalize finishes the operation and returns the trailing output bytes.
// Encrypting pads the buffered remainder (a full padding block when the input
// was block-aligned, including empty input). Decrypting strips and validates
// the padding, failing with ErrInvalidPadding on a wrong secret or corrupted
// ciphertext, or ErrInvalidBlockSize when the ciphertext length was not a
// positive multiple of the block size.
//
// The context is terminal afterwards, on success and failure alike.
func (c *Crypto) Finalize() ([]byte, error) {
	if c.finalized {
		return nil, ErrFinalized
	}

	c.finalized = true

	if c.direction == Encrypt {
		padded := pkcs7Pad(c.buf, aes.BlockSize)
		out := make([]byte, len(padded))
		c.mode.CryptBlocks(out, padded)
		c.buf = nil

		return out, nil
	}

	if len(c.buf) != aes.BlockSize {
		return nil, ErrInvalidBlockSize
	}

	block := make([]byte, aes.BlockSize)
	c.mode.CryptBlocks(block, c.buf)
	c.buf = nil

	return pkcs7Unpad(block)
}
