package signing

import (
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/spacemeshos/go-slashindicator/common/types"
)

type edVerifierOption struct {
	prefix []byte
}

// VerifierOptionFunc to modify verifier.
type VerifierOptionFunc func(*edVerifierOption) error

// WithVerifierPrefix sets the prefix used by the verifier. This usually is the chain id.
func WithVerifierPrefix(prefix []byte) VerifierOptionFunc {
	return func(opts *edVerifierOption) error {
		opts.prefix = prefix
		return nil
	}
}

// EdVerifier verifies domain separated ed25519 signatures.
type EdVerifier struct {
	prefix []byte
}

func NewEdVerifier(opts ...VerifierOptionFunc) (*EdVerifier, error) {
	cfg := &edVerifierOption{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return &EdVerifier{prefix: cfg.prefix}, nil
}

// Verify verifies that a signature matches public key and message.
func (ev *EdVerifier) Verify(d Domain, key types.VoteKey, m []byte, sig types.EdSignature) bool {
	return ed25519.Verify(key[:], domainMessage(ev.prefix, d, m), sig[:])
}

// VerifyVote verifies a finality vote signed by key.
func (ev *EdVerifier) VerifyVote(key types.VoteKey, vote *types.VoteRecord) bool {
	return ev.Verify(FINALITY, key, vote.Data.SignedBytes(), vote.Signature)
}
