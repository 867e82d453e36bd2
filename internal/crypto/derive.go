package crypto

import (
	"encoding/hex"
	"fmt"
)

// SecretLength is the number of leading secret characters that are significant.
// Secrets are trimmed to this length before hex decoding; anything beyond it
// is ignored.
const SecretLength = 32

// Derive hex-decodes the first SecretLength characters of secret into the
// 16 bytes used as both the AES-128 key and the CBC IV.
func Derive(secret string) ([]byte, error) {
	if len(secret) < SecretLength {
		return nil, fmt.Errorf("%w: got %d", ErrSecretLength, len(secret))
	}

	material, err := hex.DecodeString(secret[:SecretLength])
	if err != nil {
		return nil, fmt.Errorf("decoding secret: %w", err)
	}

	return material, nil
}
