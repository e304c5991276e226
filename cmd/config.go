package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/skysheng7/sea-otter-social-analysis/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set otterstats configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		fmt.Printf("social_behaviors: %s\n", strings.Join(c.SocialBehaviors, ", "))
		fmt.Printf("top_n: %d\n", c.TopN)
		fmt.Printf("alpha: %.3f\n", c.Alpha)
		fmt.Printf("include_self_pairs: %t\n", c.IncludeSelfPairs)
		fmt.Printf("max_pairs_shown: %d\n", c.MaxPairsShown)
		fmt.Printf("sample_rows: %d\n", c.SampleRows)
		fmt.Printf("sample_subjects: %d\n", c.SampleSubjects)
		fmt.Printf("sample_seed: %d\n", c.SampleSeed)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := effectiveConfig()
		if err != nil {
			return err
		}
		switch key {
		case "social_behaviors":
			parts := strings.Split(val, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			c.SocialBehaviors = parts
		case "top_n":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("top_n must be an integer: %w", err)
			}
			c.TopN = n
		case "alpha":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("alpha must be a number: %w", err)
			}
			if f <= 0 || f >= 1 {
				return fmt.Errorf("alpha must be in (0, 1), got %v", f)
			}
			c.Alpha = f
		case "include_self_pairs":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("include_self_pairs must be a boolean: %w", err)
			}
			c.IncludeSelfPairs = b
		case "max_pairs_shown":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("max_pairs_shown must be an integer: %w", err)
			}
			c.MaxPairsShown = n
		case "sample_rows":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("sample_rows must be an integer: %w", err)
			}
			c.SampleRows = n
		case "sample_subjects":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("sample_subjects must be an integer: %w", err)
			}
			c.SampleSubjects = n
		case "sample_seed":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("sample_seed must be an integer: %w", err)
			}
			c.SampleSeed = n
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Println("✓ Saved")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
