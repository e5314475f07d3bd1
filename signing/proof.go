package signing

import (
	"encoding/binary"

	"github.com/spacemeshos/go-slashindicator/common/types"
)

const (
	proofVoteSize = 8 + 8 + types.Hash32Length + types.Hash32Length + types.EdSignatureSize

	// FinalityProofSize is the length of a serialized finality violation proof.
	FinalityProofSize = 2*proofVoteSize + types.VoteKeySize
)

// EncodeFinalityProof serializes two conflicting votes and the key that allegedly signed both.
// For each vote it writes source and target heights as big-endian uint64, source and target
// hashes and the signature, followed by the vote key.
func EncodeFinalityProof(a, b *types.VoteRecord, key types.VoteKey) []byte {
	buf := make([]byte, 0, FinalityProofSize)
	for _, vote := range [...]*types.VoteRecord{a, b} {
		buf = binary.BigEndian.AppendUint64(buf, vote.Data.SourceHeight.Uint64())
		buf = binary.BigEndian.AppendUint64(buf, vote.Data.TargetHeight.Uint64())
		buf = append(buf, vote.Data.SourceHash[:]...)
		buf = append(buf, vote.Data.TargetHash[:]...)
		buf = append(buf, vote.Signature[:]...)
	}
	return append(buf, key[:]...)
}

// DecodeFinalityProof parses a proof produced by EncodeFinalityProof.
func DecodeFinalityProof(proof []byte) (a, b types.VoteRecord, key types.VoteKey, ok bool) {
	if len(proof) != FinalityProofSize {
		return a, b, key, false
	}
	for _, vote := range [...]*types.VoteRecord{&a, &b} {
		vote.Data.SourceHeight = types.Height(binary.BigEndian.Uint64(proof))
		vote.Data.TargetHeight = types.Height(binary.BigEndian.Uint64(proof[8:]))
		proof = proof[16:]
		proof = proof[copy(vote.Data.SourceHash[:], proof):]
		proof = proof[copy(vote.Data.TargetHash[:], proof):]
		proof = proof[copy(vote.Signature[:], proof):]
	}
	copy(key[:], proof)
	return a, b, key, true
}

// ProofVerifier checks that both votes in a finality proof are signed by the key it carries.
type ProofVerifier struct {
	verifier *EdVerifier
}

// NewProofVerifier creates a ProofVerifier. Options are passed to the underlying EdVerifier.
func NewProofVerifier(opts ...VerifierOptionFunc) (*ProofVerifier, error) {
	verifier, err := NewEdVerifier(opts...)
	if err != nil {
		return nil, err
	}
	return &ProofVerifier{verifier: verifier}, nil
}

// Verify returns true if proof is well formed and both votes carry valid signatures.
func (pv *ProofVerifier) Verify(proof []byte) bool {
	a, b, key, ok := DecodeFinalityProof(proof)
	if !ok {
		return false
	}
	return pv.verifier.VerifyVote(key, &a) && pv.verifier.VerifyVote(key, &b)
}
