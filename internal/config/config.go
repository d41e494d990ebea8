package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/amterp/better-emoji-picker/internal/logging"
	"github.com/amterp/better-emoji-picker/internal/source"
)

// Upstream datasets: the iamcal/emoji-data catalog carries rendering
// metadata and ordering, the muan/emojilib index carries search aliases.
const (
	DefaultCatalogURL = "https://raw.githubusercontent.com/iamcal/emoji-data/master/emoji.json"
	DefaultKeywordURL = "https://raw.githubusercontent.com/muan/emojilib/main/dist/emoji-en-US.json"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	Sources        source.Config  `mapstructure:"sources"`
	OutputPath     string         `mapstructure:"output_path"`
	ServeAddr      string         `mapstructure:"serve_addr"`
	PushgatewayURL string         `mapstructure:"pushgateway_url"`
	Log            logging.Config `mapstructure:"log"`
	DryRun         bool           // Not from config file, set by flag
}

// LoadConfig loads configuration from file and environment variables.
// A missing config file is fine; every key has a default.
func LoadConfig(configPath string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("sources.catalog_url", DefaultCatalogURL)
	v.SetDefault("sources.keyword_url", DefaultKeywordURL)
	v.SetDefault("sources.timeout_seconds", 30)
	v.SetDefault("output_path", "data/emojis.json")
	v.SetDefault("serve_addr", ":8090")
	v.SetDefault("pushgateway_url", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)
	v.SetDefault("log.time_format", "15:04:05")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.emoji-data-builder")
		v.AddConfigPath("/etc/emoji-data-builder/")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	v.SetEnvPrefix("EMOJI_BUILDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
