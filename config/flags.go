package config

import (
	"github.com/spf13/pflag"
)

// AddFlags registers command line flags that override values of cfg.
// Flags must be parsed after the config file was loaded for overrides to take effect.
// Returns the location of the config file.
func AddFlags(flags *pflag.FlagSet, cfg *Config) (configPath *string) {
	configPath = flags.StringP("config", "c", "", "load configuration from file (toml, json or yaml)")
	flags.StringVarP(&cfg.DataDir, "data-dir", "d", cfg.DataDir,
		"directory for the node database and lock file")
	flags.StringVar(&cfg.ChainID, "chain-id", cfg.ChainID,
		"prefix of signed finality votes")
	flags.BoolVar(&cfg.DatabaseLatencyMetering, "db-latency-metering", cfg.DatabaseLatencyMetering,
		"collect latency of every database query")

	flags.StringVar(&cfg.Logging.Encoder, "log-encoder", cfg.Logging.Encoder,
		"log as console text or json")
	flags.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level,
		"default log level")

	flags.StringVar(&cfg.API.Listen, "api-listen", cfg.API.Listen,
		"address for the json api")
	flags.DurationVar(&cfg.API.Timeout, "api-timeout", cfg.API.Timeout,
		"read and write timeout of the json api")
	flags.StringSliceVar(&cfg.API.CorsOrigins, "api-cors-origins", cfg.API.CorsOrigins,
		"origins allowed to make cross-origin requests")

	flags.BoolVar(&cfg.Metrics.Enable, "metrics", cfg.Metrics.Enable,
		"serve prometheus metrics")
	flags.StringVar(&cfg.Metrics.Listen, "metrics-listen", cfg.Metrics.Listen,
		"address for the prometheus endpoint")

	flags.Uint64Var(&cfg.Slashing.MisdemeanorThreshold, "misdemeanor-threshold", cfg.Slashing.MisdemeanorThreshold,
		"number of reports that make a misdemeanor")
	flags.Uint64Var(&cfg.Slashing.FelonyThreshold, "felony-threshold", cfg.Slashing.FelonyThreshold,
		"number of reports that make a felony")
	flags.Uint64Var(&cfg.Slashing.DecayRate, "decay-rate", cfg.Slashing.DecayRate,
		"counters decay by felony-threshold / decay-rate on every compaction")
	flags.Uint64Var(&cfg.Slashing.FinalityRewardRatio, "finality-reward-ratio", cfg.Slashing.FinalityRewardRatio,
		"percent of the reward pool paid for a finality violation proof")
	flags.Uint64Var(&cfg.Slashing.CompactInterval, "compact-interval", cfg.Slashing.CompactInterval,
		"number of blocks between compactions, 0 disables them")
	flags.Uint64Var(&cfg.Genesis.RewardPool, "reward-pool", cfg.Genesis.RewardPool,
		"initial balance of the reward pool")
	return configPath
}
