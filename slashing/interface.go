package slashing

import (
	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/events"
)

//go:generate mockgen -typed -package=slashing -destination=./mocks.go -source=./interface.go

type validatorSet interface {
	IsCurrentMember(types.ValidatorID) bool
	LivingValidators() []types.Validator
	EscalateFelony(types.ValidatorID)
	EscalateMisdemeanor(types.ValidatorID)
}

type rewardPool interface {
	Balance() types.Amount
	Pay(recipient types.ValidatorID, amount types.Amount) error
}

type proofVerifier interface {
	Verify(proof []byte) bool
}

type publisher interface {
	ReportSlash(events.EventSlash)
	ReportParamChange(events.EventParamChange)
	ReportCompacted(events.EventCompacted)
}
