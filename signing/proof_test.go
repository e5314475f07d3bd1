package signing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-slashindicator/common/types"
)

func conflictingVotes(t *testing.T, signer *EdSigner) (types.VoteRecord, types.VoteRecord) {
	t.Helper()
	a := signer.SignVote(types.VoteData{
		SourceHeight: 1,
		SourceHash:   types.RandomHash(),
		TargetHeight: 10,
		TargetHash:   types.RandomHash(),
	})
	b := signer.SignVote(types.VoteData{
		SourceHeight: 5,
		SourceHash:   types.RandomHash(),
		TargetHeight: 10,
		TargetHash:   types.RandomHash(),
	})
	return a, b
}

func TestFinalityProofLayout(t *testing.T) {
	signer, err := NewEdSigner()
	require.NoError(t, err)
	a, b := conflictingVotes(t, signer)

	proof := EncodeFinalityProof(&a, &b, signer.VoteKey())
	require.Len(t, proof, FinalityProofSize)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, proof[:8])
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 10}, proof[8:16])
	require.Equal(t, a.Data.SourceHash[:], proof[16:48])
	require.Equal(t, a.Data.TargetHash[:], proof[48:80])
	require.Equal(t, a.Signature[:], proof[80:144])
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 5}, proof[144:152])
	require.Equal(t, signer.VoteKey().Bytes(), proof[FinalityProofSize-types.VoteKeySize:])

	da, db, key, ok := DecodeFinalityProof(proof)
	require.True(t, ok)
	require.Equal(t, a, da)
	require.Equal(t, b, db)
	require.Equal(t, signer.VoteKey(), key)

	_, _, _, ok = DecodeFinalityProof(proof[1:])
	require.False(t, ok)
}

func TestProofVerifier(t *testing.T) {
	prefix := []byte("chain")
	signer, err := NewEdSigner(WithPrefix(prefix))
	require.NoError(t, err)
	other, err := NewEdSigner(WithPrefix(prefix))
	require.NoError(t, err)

	pv, err := NewProofVerifier(WithVerifierPrefix(prefix))
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		a, b := conflictingVotes(t, signer)
		require.True(t, pv.Verify(EncodeFinalityProof(&a, &b, signer.VoteKey())))
	})
	t.Run("wrong key", func(t *testing.T) {
		a, b := conflictingVotes(t, signer)
		require.False(t, pv.Verify(EncodeFinalityProof(&a, &b, other.VoteKey())))
	})
	t.Run("one vote by another signer", func(t *testing.T) {
		a, _ := conflictingVotes(t, signer)
		_, b := conflictingVotes(t, other)
		require.False(t, pv.Verify(EncodeFinalityProof(&a, &b, signer.VoteKey())))
	})
	t.Run("tampered height", func(t *testing.T) {
		a, b := conflictingVotes(t, signer)
		b.Data.SourceHeight++
		require.False(t, pv.Verify(EncodeFinalityProof(&a, &b, signer.VoteKey())))
	})
	t.Run("other prefix", func(t *testing.T) {
		a, b := conflictingVotes(t, signer)
		pv, err := NewProofVerifier(WithVerifierPrefix([]byte("other")))
		require.NoError(t, err)
		require.False(t, pv.Verify(EncodeFinalityProof(&a, &b, signer.VoteKey())))
	})
	t.Run("truncated", func(t *testing.T) {
		a, b := conflictingVotes(t, signer)
		require.False(t, pv.Verify(EncodeFinalityProof(&a, &b, signer.VoteKey())[:100]))
	})
}
