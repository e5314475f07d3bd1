// Package slashing tracks validator misbehavior and escalates it to misdemeanors and felonies.
package slashing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/events"
	"github.com/spacemeshos/go-slashindicator/log"
)

// ErrStaleHeight is returned for a report at a height that is not above the last accepted one.
var ErrStaleHeight = errors.New("height did not advance")

type Opt func(*Slasher)

// WithLogger configures logger for the slasher.
func WithLogger(logger *zap.Logger) Opt {
	return func(s *Slasher) {
		s.logger = logger
	}
}

// WithClock configures the clock used for slash timestamps.
func WithClock(clock clockwork.Clock) Opt {
	return func(s *Slasher) {
		s.clock = clock
	}
}

// WithConfig configures the slashing parameters.
func WithConfig(cfg Config) Opt {
	return func(s *Slasher) {
		s.cfg = cfg
	}
}

// Slasher counts misbehavior reports per validator, decays the counters on compaction
// and punishes validators for proven finality violations.
//
// Escalations and events are delivered while the internal lock is held,
// collaborators must not call back into the Slasher.
type Slasher struct {
	logger     *zap.Logger
	clock      clockwork.Clock
	validators validatorSet
	pool       rewardPool
	oracle     proofVerifier
	publisher  publisher

	mu         sync.Mutex
	cfg        Config
	watermark  types.Height
	indicators *registry
}

// New creates a Slasher with an empty registry.
func New(
	validators validatorSet,
	pool rewardPool,
	oracle proofVerifier,
	publisher publisher,
	opts ...Opt,
) (*Slasher, error) {
	s := &Slasher{
		logger:     zap.NewNop(),
		clock:      clockwork.NewRealClock(),
		validators: validators,
		pool:       pool,
		oracle:     oracle,
		publisher:  publisher,
		cfg:        DefaultConfig(),
		indicators: newRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("slashing config: %w", err)
	}
	return s, nil
}

// Report records misbehavior of validator at height.
// Heights must strictly increase across all validators, a report at a height that is not above
// the last accepted one fails with ErrStaleHeight. Reports for validators that are not in the
// current set advance the height but are otherwise ignored.
func (s *Slasher) Report(ctx context.Context, validator types.ValidatorID, height types.Height) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if height <= s.watermark {
		reportStale.Inc()
		return fmt.Errorf("%w: height %d, last accepted %d", ErrStaleHeight, height, s.watermark)
	}
	s.watermark = height

	if !s.validators.IsCurrentMember(validator) {
		reportNotMember.Inc()
		s.logger.Debug("ignoring report for validator outside of the current set",
			log.ZContext(ctx),
			zap.Stringer("validator", validator),
			zap.Uint64("height", height.Uint64()),
		)
		return nil
	}
	reportAccepted.Inc()

	indicator := s.indicators.get(validator)
	if indicator == nil {
		indicator = s.indicators.add(validator)
		registrySize.Set(float64(s.indicators.len()))
	}
	indicator.Count++
	indicator.LastHeight = height

	switch {
	case indicator.Count%s.cfg.FelonyThreshold == 0:
		indicator.Count = 0
		felonies.Inc()
		s.logger.Info("validator committed felony",
			log.ZContext(ctx),
			zap.Stringer("validator", validator),
			zap.Uint64("height", height.Uint64()),
		)
		s.validators.EscalateFelony(validator)
		s.publisher.ReportSlash(events.EventSlash{
			Validator: validator,
			Height:    height,
			Timestamp: s.clock.Now(),
			Kind:      events.KindFelony,
		})
	case indicator.Count%s.cfg.MisdemeanorThreshold == 0:
		misdemeanors.Inc()
		s.logger.Info("validator committed misdemeanor",
			log.ZContext(ctx),
			zap.Stringer("validator", validator),
			zap.Uint64("height", height.Uint64()),
			zap.Uint64("count", indicator.Count),
		)
		s.validators.EscalateMisdemeanor(validator)
		s.publisher.ReportSlash(events.EventSlash{
			Validator: validator,
			Height:    height,
			Timestamp: s.clock.Now(),
			Kind:      events.KindMisdemeanor,
		})
	}
	return nil
}

// Compact decays every counter by FelonyThreshold / DecayRate and removes
// validators whose counter would not stay positive. Returns the number of removed validators.
func (s *Slasher) Compact(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indicators.len() == 0 {
		return 0
	}
	decay := s.cfg.DecayAmount()
	removed := s.indicators.compact(decay)
	remaining := s.indicators.len()

	compactionRemoved.Add(float64(removed))
	registrySize.Set(float64(remaining))
	s.logger.Debug("compacted indicators",
		log.ZContext(ctx),
		zap.Uint64("decay", decay),
		zap.Int("removed", removed),
		zap.Int("remaining", remaining),
	)
	s.publisher.ReportCompacted(events.EventCompacted{Removed: removed, Remaining: remaining})
	return removed
}

// Indicator returns the misbehavior record of validator.
func (s *Slasher) Indicator(validator types.ValidatorID) (Indicator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	indicator := s.indicators.get(validator)
	if indicator == nil {
		return Indicator{}, false
	}
	return indicator.Indicator, true
}

// Indicators returns all misbehavior records in no particular order.
func (s *Slasher) Indicators() []ValidatorIndicator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indicators.all()
}

// Thresholds returns the misdemeanor and felony thresholds.
func (s *Slasher) Thresholds() (misdemeanor, felony uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.MisdemeanorThreshold, s.cfg.FelonyThreshold
}

// Params returns the current parameters.
func (s *Slasher) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Params
}

// Watermark returns the height of the last accepted report.
func (s *Slasher) Watermark() types.Height {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watermark
}

// UpdateParam applies a governance update. value is a 32 byte big-endian unsigned integer.
func (s *Slasher) UpdateParam(ctx context.Context, key string, value []byte) error {
	decoded, err := decodeParamValue(value)
	if err != nil {
		return err
	}
	return s.SetParam(ctx, key, decoded)
}

// SetParam updates a single parameter if the result satisfies all constraints.
func (s *Slasher) SetParam(ctx context.Context, key string, value uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	params, err := s.cfg.With(key, value)
	if err != nil {
		return err
	}
	s.cfg.Params = params
	s.logger.Info("slashing param updated",
		log.ZContext(ctx),
		zap.String("key", key),
		zap.Uint64("value", value),
		zap.Object("params", &s.cfg.Params),
	)
	s.publisher.ReportParamChange(events.EventParamChange{Key: key, Value: value})
	return nil
}

// Snapshot is the complete state of a Slasher.
type Snapshot struct {
	Watermark  types.Height
	Params     Params
	Indicators []ValidatorIndicator
}

// Snapshot returns a copy of the current state.
func (s *Slasher) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Watermark:  s.watermark,
		Params:     s.cfg.Params,
		Indicators: s.indicators.all(),
	}
}

// Restore replaces the current state with snapshot.
func (s *Slasher) Restore(snapshot Snapshot) error {
	if err := snapshot.Params.Validate(); err != nil {
		return fmt.Errorf("restore params: %w", err)
	}
	indicators := newRegistry()
	for _, indicator := range snapshot.Indicators {
		if indicators.get(indicator.Validator) != nil {
			return fmt.Errorf("restore: duplicate indicator for %s", indicator.Validator)
		}
		*indicators.add(indicator.Validator) = indicator
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.watermark = snapshot.Watermark
	s.cfg.Params = snapshot.Params
	s.indicators = indicators
	registrySize.Set(float64(indicators.len()))
	s.logger.Info("restored slashing state",
		zap.Uint64("watermark", snapshot.Watermark.Uint64()),
		zap.Int("indicators", indicators.len()),
		zap.Object("params", &s.cfg.Params),
	)
	return nil
}
