// Package cli provides the command-line interface for identicon.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/identicon/internal/colour"
	"github.com/jmylchreest/identicon/internal/version"
)

// NewRootCmd builds the identicon command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "identicon",
		Short: "Deterministic identicon generator",
		Long: `identicon derives a symmetric 5x5 pixel avatar from any string.

The same input always produces the same image: the input is hashed, the
first bytes of the hash pick the colour, and the rest lay out a mirrored
grid of cells that is rendered to a PNG.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable coloured terminal output")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColour, _ := cmd.Flags().GetBool("no-color"); noColour {
			colour.DisableColourOutput = true
		}
	}

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newVerifyCmd())

	return rootCmd
}

// newLogger creates the logger for a command from the global verbosity flags.
// Logs go to the command's error stream.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "identicon",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
