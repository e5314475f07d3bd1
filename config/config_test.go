package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-slashindicator/common/types"
)

func writeConfig(tb testing.TB, name, content string) string {
	path := filepath.Join(tb.TempDir(), name)
	require.NoError(tb, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, filepath.Join(cfg.DataDir, LockFile), cfg.FileLock())
}

func TestLoadToml(t *testing.T) {
	id := types.RandomValidatorID()
	key := types.BytesToVoteKey(types.RandomHash().Bytes())
	path := writeConfig(t, "config.toml", `
data-dir = "/tmp/slasher"
chain-id = "testnet"

[api]
listen = "0.0.0.0:1234"
timeout = "3s"

[events]
recent-slashes = 20

[slashing]
misdemeanor-threshold = 10
felony-threshold = 30
decay-rate = 3
finality-reward-ratio = 50
compact-interval = 100

[genesis]
reward-pool = 1000

[[genesis.validators]]
id = "`+id.String()+`"
vote-key = "`+key.String()+`"
`)

	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(path, &cfg))
	require.Equal(t, "/tmp/slasher", cfg.DataDir)
	require.Equal(t, "testnet", cfg.ChainID)
	require.Equal(t, "0.0.0.0:1234", cfg.API.Listen)
	require.Equal(t, 3*time.Second, cfg.API.Timeout)
	require.Equal(t, []string{"*"}, cfg.API.CorsOrigins)
	require.Equal(t, EventsConfig{BufferSize: 64, RecentSlashes: 20}, cfg.Events)
	require.Equal(t, uint64(10), cfg.Slashing.MisdemeanorThreshold)
	require.Equal(t, uint64(30), cfg.Slashing.FelonyThreshold)
	require.Equal(t, uint64(3), cfg.Slashing.DecayRate)
	require.Equal(t, uint64(50), cfg.Slashing.FinalityRewardRatio)
	require.Equal(t, uint64(100), cfg.Slashing.CompactInterval)
	require.Equal(t, uint64(1000), cfg.Genesis.RewardPool)
	require.Equal(t, []types.Validator{{ID: id, VoteKey: key}}, cfg.Genesis.Validators)
	require.NoError(t, cfg.Validate())
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"metrics": {"enable": true, "listen": "127.0.0.1:0"}}`)
	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(path, &cfg))
	require.True(t, cfg.Metrics.Enable)
	require.Equal(t, "127.0.0.1:0", cfg.Metrics.Listen)
}

func TestLoadErrors(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, LoadConfig("", &cfg))

	err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), &cfg)
	require.ErrorContains(t, err, "read config file")

	path := writeConfig(t, "config.toml", `unknown-key = 1`)
	require.ErrorContains(t, LoadConfig(path, &cfg), "unknown-key")

	path = writeConfig(t, "config.toml", `
[[genesis.validators]]
id = "0x01"
`)
	require.Error(t, LoadConfig(path, &cfg))
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		modify func(*Config)
	}{
		{"data dir", func(cfg *Config) { cfg.DataDir = "" }},
		{"connections", func(cfg *Config) { cfg.DatabaseConnections = 0 }},
		{"api listen", func(cfg *Config) { cfg.API.Listen = "" }},
		{"api timeout", func(cfg *Config) { cfg.API.Timeout = 0 }},
		{"events buffer", func(cfg *Config) { cfg.Events.BufferSize = 0 }},
		{"recent slashes", func(cfg *Config) { cfg.Events.RecentSlashes = -1 }},
		{"metrics listen", func(cfg *Config) {
			cfg.Metrics.Enable = true
			cfg.Metrics.Listen = ""
		}},
		{"encoder", func(cfg *Config) { cfg.Logging.Encoder = "xml" }},
		{"level", func(cfg *Config) { cfg.Logging.Storage = "loud" }},
		{"duplicate validator", func(cfg *Config) {
			id := types.RandomValidatorID()
			cfg.Genesis.Validators = []types.Validator{{ID: id}, {ID: id}}
		}},
		{"slashing", func(cfg *Config) { cfg.Slashing.MisdemeanorThreshold = 0 }},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[api]
listen = "0.0.0.0:1234"

[slashing]
felony-threshold = 200
`)
	cfg := DefaultConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	configPath := AddFlags(flags, &cfg)
	require.NoError(t, flags.Parse([]string{"--config", path, "--felony-threshold", "300"}))
	require.Equal(t, path, *configPath)

	require.NoError(t, LoadConfig(*configPath, &cfg))
	require.Equal(t, "0.0.0.0:1234", cfg.API.Listen)
	require.Equal(t, uint64(200), cfg.Slashing.FelonyThreshold)

	// flags are parsed again after loading the file
	require.NoError(t, flags.Parse([]string{"--config", path, "--felony-threshold", "300"}))
	require.Equal(t, uint64(300), cfg.Slashing.FelonyThreshold)
	require.Equal(t, "0.0.0.0:1234", cfg.API.Listen)
}
