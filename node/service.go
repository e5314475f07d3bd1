package node

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/events"
	"github.com/spacemeshos/go-slashindicator/log"
	"github.com/spacemeshos/go-slashindicator/slashing"
	"github.com/spacemeshos/go-slashindicator/sql"
	"github.com/spacemeshos/go-slashindicator/sql/indicators"
	"github.com/spacemeshos/go-slashindicator/sql/slashes"
)

// Service serializes mutations of the Slasher, schedules compactions
// and checkpoints the state after every mutation.
type Service struct {
	logger   *zap.Logger
	db       *sql.Database
	slasher  *slashing.Slasher
	reporter *events.Reporter
	interval uint64

	mu sync.Mutex
}

func newService(
	logger *zap.Logger,
	db *sql.Database,
	slasher *slashing.Slasher,
	reporter *events.Reporter,
	interval uint64,
) *Service {
	return &Service{
		logger:   logger,
		db:       db,
		slasher:  slasher,
		reporter: reporter,
		interval: interval,
	}
}

// Report records misbehavior and compacts the registry when height crosses a compaction interval.
// It returns the indicator of validator as left by this report, tracked is false if the
// validator has no indicator.
func (s *Service) Report(
	ctx context.Context,
	validator types.ValidatorID,
	height types.Height,
) (indicator slashing.Indicator, tracked bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.slasher.Watermark()
	if err := s.slasher.Report(ctx, validator, height); err != nil {
		return slashing.Indicator{}, false, err
	}
	if s.interval > 0 && height.Uint64()/s.interval > prev.Uint64()/s.interval {
		removed := s.slasher.Compact(ctx)
		s.logger.Debug("scheduled compaction",
			log.ZContext(ctx),
			zap.Uint64("height", height.Uint64()),
			zap.Int("removed", removed),
		)
	}
	s.checkpoint(ctx)
	indicator, tracked = s.slasher.Indicator(validator)
	return indicator, tracked, nil
}

// Compact decays all counters. It returns the number of removed and remaining indicators.
func (s *Service) Compact(ctx context.Context) (removed, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed = s.slasher.Compact(ctx)
	s.checkpoint(ctx)
	return removed, len(s.slasher.Indicators())
}

// SubmitFinalityEvidence validates evidence and slashes the offender.
func (s *Service) SubmitFinalityEvidence(
	ctx context.Context,
	evidence *types.FinalityEvidence,
	submitter types.ValidatorID,
) (events.EventSlash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slash, err := s.slasher.SubmitFinalityEvidence(ctx, evidence, submitter)
	if err != nil {
		return slash, err
	}
	s.checkpoint(ctx)
	return slash, nil
}

// UpdateParam applies a governance update.
func (s *Service) UpdateParam(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slasher.UpdateParam(ctx, key, value); err != nil {
		return err
	}
	s.checkpoint(ctx)
	return nil
}

func (s *Service) Indicator(validator types.ValidatorID) (slashing.Indicator, bool) {
	return s.slasher.Indicator(validator)
}

func (s *Service) Indicators() []slashing.ValidatorIndicator {
	return s.slasher.Indicators()
}

func (s *Service) Thresholds() (misdemeanor, felony uint64) {
	return s.slasher.Thresholds()
}

func (s *Service) Params() slashing.Params {
	return s.slasher.Params()
}

// History returns recorded slashes of validator, newest first.
func (s *Service) History(ctx context.Context, validator types.ValidatorID, limit int) ([]events.EventSlash, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("history of %s: %w", validator, err)
	}
	defer tx.Release()
	return slashes.ByValidator(tx, validator, limit)
}

// Recent returns the latest slashes kept in memory, oldest first.
func (s *Service) Recent() []events.EventSlash {
	return s.reporter.Recent()
}

// Checkpoint persists the current state of the Slasher.
func (s *Service) Checkpoint(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

func (s *Service) save(ctx context.Context) error {
	snapshot := s.slasher.Snapshot()
	if err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		return indicators.Save(tx, snapshot)
	}); err != nil {
		return fmt.Errorf("checkpoint slashing state: %w", err)
	}
	checkpoints.Inc()
	return nil
}

// checkpoint failures are not returned, the mutation is already applied in memory.
func (s *Service) checkpoint(ctx context.Context) {
	if err := s.save(ctx); err != nil {
		checkpointFailures.Inc()
		s.logger.Error("failed to checkpoint", log.ZContext(ctx), zap.Error(err))
	}
}
