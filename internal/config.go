package internal

import (
	"fmt"

	"github.com/spf13/viper"
)

type RowscopeConfig struct {
	AppName string `mapstructure:"app_name"`

	Inspector struct {
		Limit          int64 `mapstructure:"limit"`
		Ascending      bool  `mapstructure:"ascending"`
		WithMetaTables bool  `mapstructure:"with_meta_tables"`
	} `mapstructure:"inspector"`

	Server struct {
		Addr  string `mapstructure:"addr"`
		Debug bool   `mapstructure:"debug"`
	} `mapstructure:"server"`

	// Databases maps database id to its open parameters. EncryptionKey is
	// hex-encoded and handed to the engine opener as-is; empty means the
	// database is not encrypted.
	Databases map[string]struct {
		EncryptionKey string `mapstructure:"encryption_key"`
	} `mapstructure:"databases"`
}

func LoadConfig(path string) (*RowscopeConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("inspector.limit", 250)
	v.SetDefault("inspector.ascending", true)
	v.SetDefault("server.addr", "127.0.0.1:8867")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg RowscopeConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
