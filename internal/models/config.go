package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"` // postgres connection string for the telemetry sink
}

type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`

	// Seed data: "fixture" loads the built-in collections, "random"
	// generates collections of the configured sizes.
	SeedMode         string `mapstructure:"seed_mode"`
	Seed             int64  `mapstructure:"seed"`
	InitialOrders    int    `mapstructure:"initial_orders"`
	InitialDishes    int    `mapstructure:"initial_dishes"`
	InitialInventory int    `mapstructure:"initial_inventory"`
	InitialStaff     int    `mapstructure:"initial_staff"`
	InitialTables    int    `mapstructure:"initial_tables"`

	// Mutation audit stream.
	AuditOutput      string `mapstructure:"audit_output"` // console, file or kafka
	AuditPath        string `mapstructure:"audit_path"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	KafkaTopicPrefix string `mapstructure:"kafka_topic_prefix"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	// Report export.
	OutputFormat      string             `mapstructure:"output_format"` // csv, json or parquet
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"` // local or s3
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	Database DatabaseConfig `mapstructure:"database"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("seed_mode", "fixture")
	viper.SetDefault("audit_output", "console")
	viper.SetDefault("output_format", "csv")
	viper.SetDefault("output_destination", "local")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
