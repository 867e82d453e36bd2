// Package commands wires the CLI surface: the root command carries the
// shared flags, subcommands bind them through viper into the validated
// configuration and hand off to the file processor.
package commands
