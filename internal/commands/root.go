package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hexcrypt/hexcrypt/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "hexcrypt [flags] command [flags] files...",
		Short: "Password-based file encryption utility",
		Long: `A file encryption utility using AES-128-CBC keyed from a hex secret.
Provides commands for encrypting and decrypting files; the same secret
must be supplied for both directions.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper.SetEnvPrefix("hexcrypt")
			viper.AutomaticEnv()

			return viper.BindPFlags(cmd.Flags())
		},
	}

	root.PersistentFlags().StringP("secret", "s", "", "Hex secret (at least 32 characters; only the first 32 are used)")
	root.PersistentFlags().StringP("secret-file", "f", "", "Path to a file holding the hex secret")

	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().Int("buffer-size", config.DefaultBufferSize, "Stream chunk size in bytes")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics on completion")
	root.PersistentFlags().BoolP("preserve-timestamps", "p", false, "Preserve the source modification time on the output")

	root.PersistentFlags().String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	root.PersistentFlags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")

	root.AddCommand(NewEncryptCommand(cfg), NewDecryptCommand(cfg))

	return root
}
