// Package config contains slash indicator node configuration definitions.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/log"
	"github.com/spacemeshos/go-slashindicator/slashing"
)

const (
	defaultDataDirName = "slashindicator"
	// LockFile is the name of the lock file inside of the data directory.
	LockFile = "LOCK"
)

// Config defines the top level configuration for a slash indicator node.
type Config struct {
	DataDir string `mapstructure:"data-dir"`
	// ChainID is used as a prefix for all signed finality votes.
	ChainID string `mapstructure:"chain-id"`

	DatabaseConnections     int  `mapstructure:"db-connections"`
	DatabaseLatencyMetering bool `mapstructure:"db-latency-metering"`

	Logging  LoggerConfig    `mapstructure:"logging"`
	API      APIConfig       `mapstructure:"api"`
	Events   EventsConfig    `mapstructure:"events"`
	Metrics  MetricsConfig   `mapstructure:"metrics"`
	Slashing slashing.Config `mapstructure:"slashing"`
	Genesis  GenesisConfig   `mapstructure:"genesis"`
}

// LoggerConfig holds the encoder and the logging level for each module.
type LoggerConfig struct {
	Encoder  string `mapstructure:"encoder"`
	Level    string `mapstructure:"level"`
	Slashing string `mapstructure:"slashing"`
	Events   string `mapstructure:"events"`
	Storage  string `mapstructure:"storage"`
	API      string `mapstructure:"api"`
}

// APIConfig configures the json http api.
type APIConfig struct {
	Listen      string        `mapstructure:"listen"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CorsOrigins []string      `mapstructure:"cors-origins"`
}

// EventsConfig configures the in-process event bus.
type EventsConfig struct {
	// BufferSize is the number of events buffered for every subscriber.
	BufferSize int `mapstructure:"buffer-size"`
	// RecentSlashes is the number of latest slashes served without reading the database.
	RecentSlashes int `mapstructure:"recent-slashes"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Enable bool   `mapstructure:"enable"`
	Listen string `mapstructure:"listen"`
}

// GenesisConfig is the initial state of a standalone node.
type GenesisConfig struct {
	Validators []types.Validator `mapstructure:"validators"`
	RewardPool uint64            `mapstructure:"reward-pool"`
}

// DefaultConfig returns the default configuration for a slash indicator node.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	level := zapcore.InfoLevel.String()
	return Config{
		DataDir:             filepath.Join(home, defaultDataDirName),
		ChainID:             "slashindicator",
		DatabaseConnections: 16,
		Logging: LoggerConfig{
			Encoder:  log.ConsoleEncoder,
			Level:    level,
			Slashing: level,
			Events:   level,
			Storage:  level,
			API:      level,
		},
		API: APIConfig{
			Listen:      "127.0.0.1:9190",
			Timeout:     15 * time.Second,
			CorsOrigins: []string{"*"},
		},
		Events: EventsConfig{
			BufferSize:    64,
			RecentSlashes: 100,
		},
		Metrics: MetricsConfig{
			Listen: "127.0.0.1:9191",
		},
		Slashing: slashing.DefaultConfig(),
	}
}

// FileLock returns the path of the lock file guarding the data directory.
func (cfg *Config) FileLock() string {
	return filepath.Join(cfg.DataDir, LockFile)
}

// Validate checks that the configuration can be used to start a node.
func (cfg *Config) Validate() error {
	if cfg.DataDir == "" {
		return errors.New("data-dir must be set")
	}
	if cfg.DatabaseConnections <= 0 {
		return fmt.Errorf("db-connections must be positive, got %d", cfg.DatabaseConnections)
	}
	if cfg.API.Listen == "" {
		return errors.New("api listen address must be set")
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", cfg.API.Timeout)
	}
	if cfg.Events.BufferSize <= 0 {
		return fmt.Errorf("events buffer-size must be positive, got %d", cfg.Events.BufferSize)
	}
	if cfg.Events.RecentSlashes <= 0 {
		return fmt.Errorf("events recent-slashes must be positive, got %d", cfg.Events.RecentSlashes)
	}
	if cfg.Metrics.Enable && cfg.Metrics.Listen == "" {
		return errors.New("metrics listen address must be set")
	}
	if _, err := log.NewEncoder(cfg.Logging.Encoder); err != nil {
		return err
	}
	for _, level := range []string{
		cfg.Logging.Level,
		cfg.Logging.Slashing,
		cfg.Logging.Events,
		cfg.Logging.Storage,
		cfg.Logging.API,
	} {
		if _, err := log.ParseLevel(level); err != nil {
			return err
		}
	}
	seen := make(map[types.ValidatorID]struct{}, len(cfg.Genesis.Validators))
	for _, validator := range cfg.Genesis.Validators {
		if _, exists := seen[validator.ID]; exists {
			return fmt.Errorf("genesis validator %s is listed twice", validator.ID)
		}
		seen[validator.ID] = struct{}{}
	}
	if err := cfg.Slashing.Validate(); err != nil {
		return fmt.Errorf("slashing: %w", err)
	}
	return nil
}

// MarshalLogObject implements logging interface.
func (cfg *Config) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("data_dir", cfg.DataDir)
	encoder.AddString("chain_id", cfg.ChainID)
	encoder.AddString("api", cfg.API.Listen)
	if cfg.Metrics.Enable {
		encoder.AddString("metrics", cfg.Metrics.Listen)
	}
	encoder.AddInt("genesis_validators", len(cfg.Genesis.Validators))
	encoder.AddUint64("reward_pool", cfg.Genesis.RewardPool)
	return encoder.AddObject("slashing", &cfg.Slashing)
}
