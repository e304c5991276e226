package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/skysheng7/sea-otter-social-analysis/internal/utils"
)

// Global holds driver-level policy: which behaviors count as social, how
// many entries rankings show, the significance level for comparisons, and
// sample-generation defaults. The analysis core itself takes everything as
// explicit arguments and never reads configuration.
type Global struct {
	SocialBehaviors  []string `mapstructure:"social_behaviors" yaml:"social_behaviors"`
	TopN             int      `mapstructure:"top_n" yaml:"top_n"`
	Alpha            float64  `mapstructure:"alpha" yaml:"alpha"`
	IncludeSelfPairs bool     `mapstructure:"include_self_pairs" yaml:"include_self_pairs"`
	MaxPairsShown    int      `mapstructure:"max_pairs_shown" yaml:"max_pairs_shown"`

	// Sample generation defaults
	SampleRows     int   `mapstructure:"sample_rows" yaml:"sample_rows"`
	SampleSubjects int   `mapstructure:"sample_subjects" yaml:"sample_subjects"`
	SampleSeed     int64 `mapstructure:"sample_seed" yaml:"sample_seed"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.otterstats/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".otterstats")
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("OTTERSTATS")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("social_behaviors", []string{"grooming", "play"})
	v.SetDefault("top_n", 5)
	v.SetDefault("alpha", 0.05)
	v.SetDefault("include_self_pairs", false)
	v.SetDefault("max_pairs_shown", 10)
	v.SetDefault("sample_rows", 100)
	v.SetDefault("sample_subjects", 20)
	v.SetDefault("sample_seed", 42)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".otterstats")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
