// Huewire is a codec utility for Philips Hue Zigbee light-update messages.
//
// It encodes structured light commands (power, brightness, color, effects,
// gradients) into the compact binary payload Hue lights accept on their
// manufacturer-specific cluster, decodes captured payloads back into
// readable form, and manages named scene presets.
//
// Usage:
//
//	huewire [command] [flags]
//
// See 'huewire --help' for available commands. Set HUEWIRE_LOG_LEVEL=debug
// for verbose codec logging.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/huewire/internal/logging"
	"github.com/muurk/huewire/internal/version"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "huewire",
	Short: "Hue Zigbee light-update message codec",
	Long: `A codec utility for Philips Hue Zigbee light-update messages.

Encodes light commands into the binary payload format Hue lights accept
on manufacturer cluster 0xFC03, decodes and inspects captured payloads,
and manages named scene presets.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("huewire %s (commit: %s)\n", version.Version, version.Commit)
	},
}
