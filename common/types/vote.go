package types

import (
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-slashindicator/codec"
)

//go:generate scalegen -types VoteData,VoteRecord,FinalityEvidence

// Height is a block height.
type Height uint64

// Uint64 returns the height as uint64.
func (h Height) Uint64() uint64 { return uint64(h) }

// Amount is a quantity of the reward token.
type Amount uint64

// VoteData is the statement a validator signs in the fast finality protocol:
// the block at SourceHeight justifies the block at TargetHeight.
type VoteData struct {
	SourceHeight Height `json:"sourceHeight"`
	SourceHash   Hash32 `json:"sourceHash"`
	TargetHeight Height `json:"targetHeight"`
	TargetHash   Hash32 `json:"targetHash"`
}

// SignedBytes returns the bytes covered by a vote signature.
func (v *VoteData) SignedBytes() []byte {
	return codec.MustEncode(v)
}

// MarshalLogObject implements logging interface.
func (v *VoteData) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint64("source_height", v.SourceHeight.Uint64())
	encoder.AddString("source_hash", v.SourceHash.ShortString())
	encoder.AddUint64("target_height", v.TargetHeight.Uint64())
	encoder.AddString("target_hash", v.TargetHash.ShortString())
	return nil
}

// VoteRecord is a signed finality vote.
type VoteRecord struct {
	Data      VoteData    `json:"data"`
	Signature EdSignature `json:"signature"`
}

// MarshalLogObject implements logging interface.
func (v *VoteRecord) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	return v.Data.MarshalLogObject(encoder)
}

// FinalityEvidence is a pair of conflicting votes attributed to one validator.
type FinalityEvidence struct {
	VoteA     VoteRecord  `json:"voteA"`
	VoteB     VoteRecord  `json:"voteB"`
	Validator ValidatorID `json:"validator"`
}

// MarshalLogObject implements logging interface.
func (e *FinalityEvidence) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("validator", e.Validator.String())
	if err := encoder.AddObject("vote_a", &e.VoteA); err != nil {
		return err
	}
	return encoder.AddObject("vote_b", &e.VoteB)
}
