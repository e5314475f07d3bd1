package slashing

import (
	"encoding/binary"
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

const (
	ParamMisdemeanorThreshold = "misdemeanorThreshold"
	ParamFelonyThreshold      = "felonyThreshold"
	ParamFinalityRewardRatio  = "finalitySlashRewardRatio"
	ParamDecayRate            = "decayRate"

	// MaxFelonyThreshold is the largest accepted felony threshold.
	MaxFelonyThreshold = 1000
	// MinFinalityRewardRatio and MaxFinalityRewardRatio bound the reward percentage, the maximum is exclusive.
	MinFinalityRewardRatio = 10
	MaxFinalityRewardRatio = 100
	// DefaultFinalityRewardRatio is used when the ratio was never set.
	DefaultFinalityRewardRatio = 20

	paramValueSize = 32
)

var (
	// ErrInvalidParam is returned for a parameter value that violates its constraint.
	ErrInvalidParam = errors.New("invalid param value")
	// ErrUnknownParam is returned for an unsupported parameter key.
	ErrUnknownParam = errors.New("unknown param")
)

// Params are the slashing parameters updated by governance.
type Params struct {
	MisdemeanorThreshold uint64 `mapstructure:"misdemeanor-threshold" json:"misdemeanorThreshold"`
	FelonyThreshold      uint64 `mapstructure:"felony-threshold"      json:"felonyThreshold"`
	// DecayRate divides FelonyThreshold to get the amount subtracted from every counter on compaction.
	DecayRate uint64 `mapstructure:"decay-rate" json:"decayRate"`
	// FinalityRewardRatio is the percentage of the reward pool paid for valid finality evidence.
	FinalityRewardRatio uint64 `mapstructure:"finality-reward-ratio" json:"finalitySlashRewardRatio"`
}

// DecayAmount is the amount subtracted from every counter on compaction.
func (p Params) DecayAmount() uint64 {
	return p.FelonyThreshold / p.DecayRate
}

// Validate checks that all parameters satisfy their constraints.
func (p Params) Validate() error {
	switch {
	case p.MisdemeanorThreshold < 1:
		return fmt.Errorf("%w: misdemeanor threshold must be positive", ErrInvalidParam)
	case p.FelonyThreshold <= p.MisdemeanorThreshold:
		return fmt.Errorf("%w: felony threshold %d must exceed misdemeanor threshold %d",
			ErrInvalidParam, p.FelonyThreshold, p.MisdemeanorThreshold)
	case p.FelonyThreshold > MaxFelonyThreshold:
		return fmt.Errorf("%w: felony threshold %d above %d", ErrInvalidParam, p.FelonyThreshold, MaxFelonyThreshold)
	case p.DecayRate < 1 || p.DecayRate > p.FelonyThreshold:
		return fmt.Errorf("%w: decay rate %d out of [1, %d]", ErrInvalidParam, p.DecayRate, p.FelonyThreshold)
	case p.FinalityRewardRatio != 0 &&
		(p.FinalityRewardRatio < MinFinalityRewardRatio || p.FinalityRewardRatio >= MaxFinalityRewardRatio):
		return fmt.Errorf("%w: finality reward ratio %d out of [%d, %d)",
			ErrInvalidParam, p.FinalityRewardRatio, MinFinalityRewardRatio, MaxFinalityRewardRatio)
	}
	return nil
}

// With returns a copy of p with key set to value, or an error if the result is not valid.
func (p Params) With(key string, value uint64) (Params, error) {
	switch key {
	case ParamMisdemeanorThreshold:
		p.MisdemeanorThreshold = value
	case ParamFelonyThreshold:
		p.FelonyThreshold = value
	case ParamDecayRate:
		p.DecayRate = value
	case ParamFinalityRewardRatio:
		if value == 0 {
			return p, fmt.Errorf("%w: finality reward ratio can't be unset", ErrInvalidParam)
		}
		p.FinalityRewardRatio = value
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// MarshalLogObject implements logging interface.
func (p *Params) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint64("misdemeanor_threshold", p.MisdemeanorThreshold)
	encoder.AddUint64("felony_threshold", p.FelonyThreshold)
	encoder.AddUint64("decay_rate", p.DecayRate)
	encoder.AddUint64("finality_reward_ratio", p.FinalityRewardRatio)
	return nil
}

// Config for the Slasher.
type Config struct {
	Params `mapstructure:",squash"`
	// CompactInterval is the number of blocks between compactions scheduled by the node, 0 disables them.
	CompactInterval uint64 `mapstructure:"compact-interval"`
}

// DefaultConfig returns the default parameters.
func DefaultConfig() Config {
	return Config{
		Params: Params{
			MisdemeanorThreshold: 50,
			FelonyThreshold:      150,
			DecayRate:            4,
			FinalityRewardRatio:  DefaultFinalityRewardRatio,
		},
		CompactInterval: 200,
	}
}

// MarshalLogObject implements logging interface.
func (c *Config) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	if err := c.Params.MarshalLogObject(encoder); err != nil {
		return err
	}
	encoder.AddUint64("compact_interval", c.CompactInterval)
	return nil
}

// decodeParamValue parses a 32 byte big-endian unsigned integer that must fit into uint64.
func decodeParamValue(value []byte) (uint64, error) {
	if len(value) != paramValueSize {
		return 0, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidParam, paramValueSize, len(value))
	}
	for _, b := range value[:paramValueSize-8] {
		if b != 0 {
			return 0, fmt.Errorf("%w: value overflows uint64", ErrInvalidParam)
		}
	}
	return binary.BigEndian.Uint64(value[paramValueSize-8:]), nil
}

// EncodeParamValue encodes value the way UpdateParam expects it.
func EncodeParamValue(value uint64) []byte {
	buf := make([]byte, paramValueSize)
	binary.BigEndian.PutUint64(buf[paramValueSize-8:], value)
	return buf
}
