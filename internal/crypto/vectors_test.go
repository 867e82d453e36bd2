package crypto_test

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"

	"github.com/hexcrypt/hexcrypt/internal/crypto"
)

// Case is a single known-answer vector from a YAML golden file.
type Case struct {
	Name       string `yaml:"name"`
	Plaintext  string `yaml:"plaintext"`
	Ciphertext string `yaml:"ciphertext"`
}

// Group is a named collection of vectors sharing a secret.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Secret      string `yaml:"secret"`
	Cases       []Case `yaml:"cases"`
}

func loadVectors(t *testing.T) []Group {
	t.Helper()

	files, err := filepath.Glob("testdata/*.yml")
	require.NoError(t, err, "globbing testdata")
	require.NotEmpty(t, files, "no testdata/*.yml files found")

	var groups []Group

	for _, f := range files {
		data, err := os.ReadFile(f) //nolint:gosec // test helper reads known testdata files
		require.NoErrorf(t, err, "reading %s", f)

		var fileGroups []Group

		require.NoErrorf(t, yaml.Unmarshal(data, &fileGroups), "parsing %s", f)

		groups = append(groups, fileGroups...)
	}

	return groups
}

func TestKnownAnswerVectors(t *testing.T) {
	t.Parallel()

	chunkSizes := []int{1, 7, 16, 4096}

	for _, group := range loadVectors(t) {
		group := group

		for _, vector := range group.Cases {
			vector := vector

			t.Run(group.Name+"/"+vector.Name, func(t *testing.T) {
				t.Parallel()

				plaintext, err := hex.DecodeString(vector.Plaintext)
				require.NoError(t, err)

				ciphertext, err := hex.DecodeString(vector.Ciphertext)
				require.NoError(t, err)

				for _, chunkSize := range chunkSizes {
					got := processChunked(t, group.Secret, crypto.Encrypt, chunkSize, plaintext)
					require.Equalf(t, ciphertext, got, "encrypt with chunk size %d", chunkSize)

					back := processChunked(t, group.Secret, crypto.Decrypt, chunkSize, ciphertext)
					require.Equalf(t, plaintext, back, "decrypt with chunk size %d", chunkSize)
				}
			})
		}
	}
}

// processChunked feeds input through a fresh context in chunkSize pieces and
// returns the concatenated update and finalize outputs.
func processChunked(t *testing.T, secret string, direction crypto.Direction, chunkSize int, input []byte) []byte {
	t.Helper()

	c, err := crypto.New(secret, direction)
	require.NoError(t, err)

	out := []byte{}

	for len(input) > 0 {
		n := min(chunkSize, len(input))

		part, err := c.Update(input[:n])
		require.NoError(t, err)

		out = append(out, part...)
		input = input[n:]
	}

	final, err := c.Finalize()
	require.NoError(t, err)

	return append(out, final...)
}
