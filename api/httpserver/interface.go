package httpserver

import (
	"context"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/events"
	"github.com/spacemeshos/go-slashindicator/slashing"
	"github.com/spacemeshos/go-slashindicator/staking"
)

//go:generate mockgen -typed -package=httpserver -destination=./mocks.go -source=./interface.go

type slasher interface {
	// Report returns the indicator of validator right after the report was applied.
	Report(ctx context.Context, validator types.ValidatorID, height types.Height) (slashing.Indicator, bool, error)
	Compact(ctx context.Context) (removed, remaining int)
	SubmitFinalityEvidence(
		ctx context.Context,
		evidence *types.FinalityEvidence,
		submitter types.ValidatorID,
	) (events.EventSlash, error)
	Indicator(validator types.ValidatorID) (slashing.Indicator, bool)
	Indicators() []slashing.ValidatorIndicator
	Thresholds() (misdemeanor, felony uint64)
	Params() slashing.Params
	UpdateParam(ctx context.Context, key string, value []byte) error
}

type history interface {
	History(ctx context.Context, validator types.ValidatorID, limit int) ([]events.EventSlash, error)
	Recent() []events.EventSlash
}

type validatorSet interface {
	Status(id types.ValidatorID) (staking.Status, error)
	Release(id types.ValidatorID) error
}

type rewardPool interface {
	Balance() types.Amount
	Deposit(amount types.Amount) types.Amount
	Paid(recipient types.ValidatorID) types.Amount
}
