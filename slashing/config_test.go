package slashing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.EqualValues(t, 37, cfg.DecayAmount())
}

func TestParamValue(t *testing.T) {
	encoded := EncodeParamValue(0x0102)
	require.Len(t, encoded, 32)
	require.Equal(t, []byte{1, 2}, encoded[30:])

	decoded, err := decodeParamValue(encoded)
	require.NoError(t, err)
	require.EqualValues(t, 0x0102, decoded)

	_, err = decodeParamValue(encoded[1:])
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestParamsWithUnsetRatio(t *testing.T) {
	params := DefaultConfig().Params
	params.FinalityRewardRatio = 0
	require.NoError(t, params.Validate())

	_, err := params.With(ParamFinalityRewardRatio, 0)
	require.ErrorIs(t, err, ErrInvalidParam)

	updated, err := params.With(ParamFinalityRewardRatio, 99)
	require.NoError(t, err)
	require.EqualValues(t, 99, updated.FinalityRewardRatio)
	require.Zero(t, params.FinalityRewardRatio)
}
