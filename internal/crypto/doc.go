// Package crypto implements the streaming cipher engine: AES-128 in CBC
// mode with PKCS#7 padding, keyed from a caller-supplied hex secret.
//
// The first 32 characters of the secret are hex-decoded into 16 bytes that
// serve as both the key and the IV. This key-as-IV scheme is weak (a fixed,
// key-dependent IV leaks plaintext-prefix equality across files encrypted
// with the same secret) but is retained for compatibility with existing
// encrypted files. The output carries no header, embedded IV, or integrity
// tag; a bad secret is only detectable as a padding failure at the end of
// decryption.
package crypto
