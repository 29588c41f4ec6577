package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the storefront runtime settings. The remote backend is only
// attached when FirestoreProject is set; everything else runs against the
// local key-value namespace under DataDir.
type Config struct {
	Addr             string `mapstructure:"addr"`
	Environment      string `mapstructure:"environment"`
	DataDir          string `mapstructure:"data_dir"`
	FirestoreProject string `mapstructure:"firestore_project"`
	CredentialsFile  string `mapstructure:"credentials_file"`
	StorageBucket    string `mapstructure:"storage_bucket"`
	RedisAddr        string `mapstructure:"redis_addr"`
}

// Load reads configuration from storefront.yaml (optional), the environment
// (STOREFRONT_* variables) and a .env file when present. Flat keys get
// sensible defaults so the server starts with no configuration at all.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("storefront")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("storefront")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("environment", "development")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("firestore_project", "")
	v.SetDefault("credentials_file", "")
	v.SetDefault("storage_bucket", "")
	v.SetDefault("redis_addr", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: read storefront.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
