package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "neon",
		Short:        "neon",
		SilenceUsage: true,
		Long:         `neon encodes and decodes the NEON compact, token-efficient text serialization format.`,
	}

	configPath string
	showStats  bool

	log = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to .neon.yaml (default: ./.neon.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&showStats, "stats", "s", false, "print Stats summary to stderr after encoding/decoding")
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(infoCmd)
}
