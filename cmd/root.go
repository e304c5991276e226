package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/skysheng7/sea-otter-social-analysis/internal/config"
)

var (
	// Global flags
	cfgFile string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "otterstats",
	Short: "Analyze sea otter social behavior observations",
	Long:  `Otterstats runs descriptive statistics, group-by summaries, social rankings and rank-based hypothesis tests over tables of sea otter behavioral observations.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.otterstats/config.yaml)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded configuration, loading it on demand for
// commands invoked outside the usual cobra initialization path.
func effectiveConfig() (*cfgpkg.Global, error) {
	if cfg != nil {
		return cfg, nil
	}
	return cfgpkg.Load(cfgFile)
}
