package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexcrypt/hexcrypt/internal/commands"
	"github.com/hexcrypt/hexcrypt/internal/config"
)

const testSecret = "00112233445566778899aabbccddeeff"

func TestRootCommandWiring(t *testing.T) {
	root := commands.NewRootCommand(&config.Config{}, "test")

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "encrypt")
	assert.Contains(t, names, "decrypt")

	for _, flag := range []string{
		"secret", "secret-file", "parallel", "buffer-size",
		"quiet", "delete", "stats", "preserve-timestamps",
		"encrypt-ext", "decrypt-ext",
	} {
		assert.NotNilf(t, root.PersistentFlags().Lookup(flag), "flag %q", flag)
	}

	assert.Equal(t, ".enc", root.PersistentFlags().Lookup("encrypt-ext").DefValue)
}

func TestEncryptDecryptEndToEnd(t *testing.T) {
	dir := t.TempDir()

	srcPath := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(srcPath, []byte("Hello, World!"), 0o600))

	root := commands.NewRootCommand(&config.Config{}, "test")
	root.SetArgs([]string{"encrypt", "--quiet", "--secret", testSecret, srcPath})
	require.NoError(t, root.Execute())

	ciphertext, err := os.ReadFile(srcPath + ".enc")
	require.NoError(t, err)
	require.Len(t, ciphertext, 16)

	root = commands.NewRootCommand(&config.Config{}, "test")
	root.SetArgs([]string{"decrypt", "--quiet", "--secret", testSecret, "--decrypt-ext", ".out", srcPath + ".enc"})
	require.NoError(t, root.Execute())

	plaintext, err := os.ReadFile(srcPath + ".out")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello, World!"), plaintext)
}

func TestEncryptRejectsShortSecret(t *testing.T) {
	dir := t.TempDir()

	srcPath := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(srcPath, []byte("data"), 0o600))

	root := commands.NewRootCommand(&config.Config{}, "test")
	root.SetArgs([]string{"encrypt", "--quiet", "--secret", "deadbeef", srcPath})
	require.Error(t, root.Execute())
}
