// Package config defines the runtime configuration and its validation.
package config

import (
	"encoding/hex"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hexcrypt/hexcrypt/internal/crypto"
)

// DefaultBufferSize is the default stream chunk size in bytes.
const DefaultBufferSize = 32 * 1024

// Suffixes holds the filename extensions applied to processed files.
type Suffixes struct {
	// Encrypt is appended to encrypted files
	Encrypt string `mapstructure:"encrypt-ext"`

	// Decrypt is appended to decrypted files, after stripping the encrypted suffix
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Config holds the application configuration, populated from flags and
// environment variables.
type Config struct {
	// Secret is the hex secret; only the first 32 characters are significant
	Secret string `mapstructure:"secret" validate:"required_without=SecretFile,excluded_with=SecretFile,omitempty,min=32"`

	// SecretFile is a path to a file holding the secret
	SecretFile string `mapstructure:"secret-file"`

	// Parallel is the number of concurrent workers
	Parallel int `validate:"min=1"`

	// BufferSize is the stream chunk size in bytes; affects throughput only
	BufferSize int `mapstructure:"buffer-size" validate:"min=1"`

	// Quiet suppresses non-error output
	Quiet bool

	// Delete removes the source file after successful processing
	Delete bool

	// Stats prints processing statistics on completion
	Stats bool

	// PreserveTimestamps carries the source modification time to the output
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// Suffixes configures the output file extensions
	Suffixes Suffixes `mapstructure:",squash"`

	// Decrypt selects decryption instead of encryption
	Decrypt bool

	// Files are the positional arguments
	Files []string `validate:"min=1"`
}

// Validate validates the configuration against the struct tags and checks
// that the significant part of the secret is valid hex.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if c.Secret != "" {
		if _, err := hex.DecodeString(c.Secret[:crypto.SecretLength]); err != nil {
			return fmt.Errorf("invalid secret format: %w", err)
		}
	}

	return nil
}
