// Package encryption orchestrates encryption and decryption of files through
// the streaming cipher engine. Files are processed in parallel with atomic
// temp-file writes; a fresh cipher context is created per file, since
// contexts are single-use.
package encryption
