package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Harvest HarvestConfig `mapstructure:"harvest"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type HarvestConfig struct {
	SourceURL    string        `mapstructure:"source_url"`
	SampleSize   int           `mapstructure:"sample_size"`
	Agent        string        `mapstructure:"agent"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

type StorageConfig struct {
	Backend       string        `mapstructure:"backend"`
	ProjectID     string        `mapstructure:"project_id"`
	Bucket        string        `mapstructure:"bucket"`
	Prefix        string        `mapstructure:"prefix"`
	BasePath      string        `mapstructure:"base_path"`
	UploadTimeout time.Duration `mapstructure:"upload_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8085)
	v.SetDefault("server.read_timeout", "30s")
	// Must cover a worst-case invocation: one fetch plus sample_size
	// sequential uploads, each bounded by its own timeout.
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("harvest.source_url", "https://jsonplaceholder.typicode.com/posts")
	v.SetDefault("harvest.sample_size", 3)
	v.SetDefault("harvest.agent", "ChronicleHarvester")
	v.SetDefault("harvest.fetch_timeout", "15s")
	v.SetDefault("storage.backend", "gcs")
	v.SetDefault("storage.project_id", "nexusscout")
	v.SetDefault("storage.bucket", "nexusscout-raw-data")
	v.SetDefault("storage.prefix", "raw_data")
	v.SetDefault("storage.base_path", "./data")
	v.SetDefault("storage.upload_timeout", "30s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/harvester")
	}

	// Environment variables override
	v.SetEnvPrefix("HARVESTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The harvester used to run as a cloud function configured through these
	// unprefixed variables; keep honoring them.
	_ = v.BindEnv("storage.project_id", "HARVESTER_STORAGE_PROJECT_ID", "GCP_PROJECT_ID")
	_ = v.BindEnv("storage.bucket", "HARVESTER_STORAGE_BUCKET", "CLOUD_STORAGE_BUCKET")

	// Read config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Harvest.SampleSize < 0 {
		return nil, fmt.Errorf("harvest.sample_size must not be negative, got %d", cfg.Harvest.SampleSize)
	}

	return &cfg, nil
}
