package events

import (
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-slashindicator/common/types"
)

//go:generate scalegen -types SlashPackage

// Kind describes what triggered a slash.
type Kind string

const (
	// KindMisdemeanor is a periodic penalty below the felony threshold.
	KindMisdemeanor Kind = "misdemeanor"
	// KindFelony is reached when the misbehavior counter hits the felony threshold.
	KindFelony Kind = "felony"
	// KindFinality is a felony backed by a finality violation proof.
	KindFinality Kind = "finality"
)

// EventSlash is emitted on every escalation.
type EventSlash struct {
	Validator types.ValidatorID `json:"validator"`
	Height    types.Height      `json:"height"`
	Timestamp time.Time         `json:"timestamp"`
	Kind      Kind              `json:"kind"`

	// set only for KindFinality
	EvidenceID types.Hash32      `json:"evidenceId,omitempty"`
	Submitter  types.ValidatorID `json:"submitter,omitempty"`
	Reward     types.Amount      `json:"reward,omitempty"`
}

// MarshalLogObject implements logging interface.
func (e *EventSlash) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("validator", e.Validator.String())
	encoder.AddUint64("height", e.Height.Uint64())
	encoder.AddTime("timestamp", e.Timestamp)
	encoder.AddString("kind", string(e.Kind))
	if e.Kind == KindFinality {
		encoder.AddString("evidence", e.EvidenceID.ShortString())
		encoder.AddString("submitter", e.Submitter.String())
		encoder.AddUint64("reward", uint64(e.Reward))
	}
	return nil
}

// Package returns the notification relayed to other networks.
func (e *EventSlash) Package() SlashPackage {
	return SlashPackage{
		Validator: e.Validator,
		Height:    uint64(e.Height),
		Timestamp: uint64(e.Timestamp.Unix()),
	}
}

// SlashPackage is the payload of the cross network slash notification.
type SlashPackage struct {
	Validator types.ValidatorID
	Height    uint64
	Timestamp uint64
}

// EventSlashPackage carries an encoded SlashPackage for relaying.
type EventSlashPackage struct {
	Payload []byte
}

// EventParamChange is emitted when a slashing parameter is updated.
type EventParamChange struct {
	Key   string `json:"key"`
	Value uint64 `json:"value"`
}

// EventCompacted is emitted after every compaction pass that had work to do.
type EventCompacted struct {
	Removed   int `json:"removed"`
	Remaining int `json:"remaining"`
}
