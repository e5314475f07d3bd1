package types_test

import (
	"encoding/json"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/spacemeshos/go-scale/tester"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-slashindicator/codec"
	"github.com/spacemeshos/go-slashindicator/common/types"
)

func TestVoteData_SignedBytes(t *testing.T) {
	vote := types.VoteData{
		SourceHeight: 1,
		SourceHash:   types.RandomHash(),
		TargetHeight: 10,
		TargetHash:   types.RandomHash(),
	}
	other := vote
	require.Equal(t, vote.SignedBytes(), other.SignedBytes())

	other.TargetHeight++
	require.NotEqual(t, vote.SignedBytes(), other.SignedBytes())
}

func TestFinalityEvidence_Codec(t *testing.T) {
	ev := types.FinalityEvidence{
		VoteA: types.VoteRecord{
			Data:      types.VoteData{SourceHeight: 1, TargetHeight: 10, TargetHash: types.RandomHash()},
			Signature: types.RandomEdSignature(),
		},
		VoteB: types.VoteRecord{
			Data:      types.VoteData{SourceHeight: 5, TargetHeight: 10, TargetHash: types.RandomHash()},
			Signature: types.RandomEdSignature(),
		},
		Validator: types.RandomValidatorID(),
	}
	buf, err := codec.Encode(&ev)
	require.NoError(t, err)

	var decoded types.FinalityEvidence
	require.NoError(t, codec.Decode(buf, &decoded))
	require.Equal(t, ev, decoded)
}

func TestValidatorID_JSON(t *testing.T) {
	id := types.ValidatorID{0xab, 0xcd}
	buf, err := json.Marshal(id)
	require.NoError(t, err)
	require.Equal(t, `"0xabcd000000000000000000000000000000000000"`, string(buf))

	var decoded types.ValidatorID
	require.NoError(t, json.Unmarshal(buf, &decoded))
	require.Equal(t, id, decoded)

	require.Error(t, json.Unmarshal([]byte(`"0xabcd"`), &decoded))
	require.Equal(t, "abcd0", id.ShortString())
}

func TestHash32_SetBytes(t *testing.T) {
	h := types.BytesToHash([]byte{1, 2})
	require.Equal(t, byte(1), h[30])
	require.Equal(t, byte(2), h[31])

	long := make([]byte, 40)
	long[39] = 7
	h = types.BytesToHash(long)
	require.Equal(t, byte(7), h[31])
}

func FuzzVoteDataConsistency(f *testing.F) {
	tester.FuzzConsistency[types.VoteData](f)
}

func FuzzVoteDataSafety(f *testing.F) {
	tester.FuzzSafety[types.VoteData](f)
}

func FuzzFinalityEvidenceConsistency(f *testing.F) {
	tester.FuzzConsistency[types.FinalityEvidence](f)
}

func FuzzFinalityEvidenceSafety(f *testing.F) {
	tester.FuzzSafety[types.FinalityEvidence](f)
}

func TestVoteEncoding(t *testing.T) {
	f := fuzz.NewWithSeed(1001)
	for range 100 {
		t.Run("vote data", func(t *testing.T) {
			var data types.VoteData
			f.Fuzz(&data)
			buf, err := codec.Encode(&data)
			require.NoError(t, err)

			var decoded types.VoteData
			require.NoError(t, codec.Decode(buf, &decoded))
			require.Equal(t, data, decoded)
		})
		t.Run("vote record", func(t *testing.T) {
			var record types.VoteRecord
			f.Fuzz(&record)
			buf, err := codec.Encode(&record)
			require.NoError(t, err)

			var decoded types.VoteRecord
			require.NoError(t, codec.Decode(buf, &decoded))
			require.Equal(t, record, decoded)
		})
		t.Run("finality evidence", func(t *testing.T) {
			var ev types.FinalityEvidence
			f.Fuzz(&ev)
			buf, err := codec.Encode(&ev)
			require.NoError(t, err)

			var decoded types.FinalityEvidence
			require.NoError(t, codec.Decode(buf, &decoded))
			require.Equal(t, ev, decoded)
			require.Equal(t, ev.VoteA.Data.SignedBytes(), decoded.VoteA.Data.SignedBytes())
		})
	}
}
