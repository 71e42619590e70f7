package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/tsawler/outliner/outline"
)

// Settings are the tunables loadable from a config file or OUTLINER_*
// environment variables, layered over the library defaults.
type Settings struct {
	BulletHeadings   bool          `mapstructure:"bullet_headings"`
	DashHeadings     bool          `mapstructure:"dash_headings"`
	AsteriskHeadings bool          `mapstructure:"asterisk_headings"`
	FormDetection    bool          `mapstructure:"form_detection"`
	SmallDocBudget   time.Duration `mapstructure:"small_doc_budget"`
	LargeDocBudget   time.Duration `mapstructure:"large_doc_budget"`
	TitleKeywords    []string      `mapstructure:"title_keywords"`
}

var settings Settings

// loadSettings reads the config file (if any) into the package settings.
// A missing default config file is fine; an explicitly named one must exist.
func loadSettings(cfgFile string) error {
	defaults := outline.DefaultConfig()
	viper.SetDefault("bullet_headings", false)
	viper.SetDefault("dash_headings", false)
	viper.SetDefault("asterisk_headings", false)
	viper.SetDefault("form_detection", true)
	viper.SetDefault("small_doc_budget", defaults.SmallDocBudget)
	viper.SetDefault("large_doc_budget", defaults.LargeDocBudget)
	viper.SetDefault("title_keywords", defaults.Aggregator.TitleKeywords)

	viper.SetEnvPrefix("OUTLINER")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("outliner")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		slog.Debug("loaded config", "file", viper.ConfigFileUsed())
	}

	if err := viper.Unmarshal(&settings); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// extractConfig builds the library configuration from the loaded settings.
func extractConfig() outline.Config {
	config := outline.DefaultConfig()
	config.Pattern.BulletHeadings = settings.BulletHeadings
	config.Pattern.DashHeadings = settings.DashHeadings
	config.Pattern.AsteriskHeadings = settings.AsteriskHeadings
	config.FormDetection = settings.FormDetection
	config.SmallDocBudget = settings.SmallDocBudget
	config.LargeDocBudget = settings.LargeDocBudget
	if len(settings.TitleKeywords) > 0 {
		config.Aggregator.TitleKeywords = settings.TitleKeywords
	}
	return config
}
