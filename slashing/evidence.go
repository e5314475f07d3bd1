package slashing

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/events"
	"github.com/spacemeshos/go-slashindicator/hash"
	"github.com/spacemeshos/go-slashindicator/log"
	"github.com/spacemeshos/go-slashindicator/signing"
)

var (
	ErrIdenticalVotes    = errors.New("identical votes")
	ErrSourceAfterTarget = errors.New("source height not below target height")
	ErrNoViolation       = errors.New("no violation of vote rules")
	ErrUnknownValidator  = errors.New("validator not exist")
	ErrInvalidProof      = errors.New("invalid finality proof")
)

// checkVoteRules returns nil if a and b prove a double vote or a surround vote.
func checkVoteRules(a, b *types.VoteData) error {
	if a.SourceHash == b.SourceHash && a.TargetHash == b.TargetHash {
		return ErrIdenticalVotes
	}
	if a.SourceHeight >= a.TargetHeight || b.SourceHeight >= b.TargetHeight {
		return ErrSourceAfterTarget
	}
	if a.TargetHeight == b.TargetHeight {
		return nil
	}
	if a.SourceHeight < b.SourceHeight && b.TargetHeight < a.TargetHeight {
		return nil
	}
	if b.SourceHeight < a.SourceHeight && a.TargetHeight < b.TargetHeight {
		return nil
	}
	return ErrNoViolation
}

// reward returns floor(balance * ratio / 100) without overflowing.
func reward(balance types.Amount, ratio uint64) types.Amount {
	hi, lo := bits.Mul64(uint64(balance), ratio)
	quo, _ := bits.Div64(hi, lo, 100)
	return types.Amount(quo)
}

func (s *Slasher) voteKey(validator types.ValidatorID) (types.VoteKey, bool) {
	for _, living := range s.validators.LivingValidators() {
		if living.ID == validator {
			return living.VoteKey, true
		}
	}
	return types.VoteKey{}, false
}

// SubmitFinalityEvidence punishes the validator that signed two conflicting finality votes
// and pays a share of the reward pool to submitter.
func (s *Slasher) SubmitFinalityEvidence(
	ctx context.Context,
	evidence *types.FinalityEvidence,
	submitter types.ValidatorID,
) (events.EventSlash, error) {
	s.mu.Lock()
	if s.cfg.FinalityRewardRatio == 0 {
		s.cfg.FinalityRewardRatio = DefaultFinalityRewardRatio
	}
	ratio := s.cfg.FinalityRewardRatio
	height := s.watermark
	s.mu.Unlock()

	logger := s.logger.With(
		log.ZContext(ctx),
		zap.Stringer("validator", evidence.Validator),
		zap.Stringer("submitter", submitter),
	)
	if err := checkVoteRules(&evidence.VoteA.Data, &evidence.VoteB.Data); err != nil {
		evidenceRejected("vote_rules")
		logger.Debug("rejected finality evidence", zap.Object("evidence", evidence), zap.Error(err))
		return events.EventSlash{}, err
	}
	key, exists := s.voteKey(evidence.Validator)
	if !exists {
		evidenceRejected("unknown_validator")
		return events.EventSlash{}, fmt.Errorf("%w: %s", ErrUnknownValidator, evidence.Validator)
	}
	proof := signing.EncodeFinalityProof(&evidence.VoteA, &evidence.VoteB, key)
	if !s.oracle.Verify(proof) {
		evidenceRejected("invalid_proof")
		logger.Warn("finality evidence with invalid signatures", zap.Object("evidence", evidence))
		return events.EventSlash{}, ErrInvalidProof
	}

	amount := reward(s.pool.Balance(), ratio)
	if amount > 0 {
		if err := s.pool.Pay(submitter, amount); err != nil {
			evidenceRejected("payment")
			return events.EventSlash{}, fmt.Errorf("pay reward %d: %w", amount, err)
		}
	}
	s.validators.EscalateFelony(evidence.Validator)

	ev := events.EventSlash{
		Validator:  evidence.Validator,
		Height:     height,
		Timestamp:  s.clock.Now(),
		Kind:       events.KindFinality,
		EvidenceID: types.Hash32(hash.Sum(proof)),
		Submitter:  submitter,
		Reward:     amount,
	}
	evidenceAccepted.Inc()
	finalityFelonies.Inc()
	logger.Info("validator slashed for finality violation",
		zap.Stringer("evidence", ev.EvidenceID),
		zap.Uint64("reward", uint64(amount)),
	)
	s.publisher.ReportSlash(ev)
	return ev, nil
}
