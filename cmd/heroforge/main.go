// Package main is the entry point for the heroforge CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "heroforge",
	Short: "HeroForge character lifecycle CLI",
	Long: `HeroForge manages NFT game characters: the creation saga (stats,
narrative, portrait, metadata, mint), on-chain progression (experience,
leveling, evolution), transfers, and the seasonal counter.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable info logging")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(evolveCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(seasonCmd)
}
