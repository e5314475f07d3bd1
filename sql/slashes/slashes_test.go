package slashes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/events"
	"github.com/spacemeshos/go-slashindicator/sql"
)

func TestAddByValidator(t *testing.T) {
	db := sql.InMemory()
	validator := types.RandomValidatorID()
	other := types.RandomValidatorID()
	start := time.Unix(0, 1_700_000_000_000_000_000)

	stored := []events.EventSlash{
		{Validator: validator, Height: 10, Timestamp: start, Kind: events.KindMisdemeanor},
		{Validator: other, Height: 11, Timestamp: start.Add(time.Second), Kind: events.KindFelony},
		{Validator: validator, Height: 12, Timestamp: start.Add(2 * time.Second), Kind: events.KindFelony},
		{
			Validator:  validator,
			Height:     12,
			Timestamp:  start.Add(3 * time.Second),
			Kind:       events.KindFinality,
			EvidenceID: types.RandomHash(),
			Submitter:  other,
			Reward:     200,
		},
	}
	for i := range stored {
		require.NoError(t, Add(db, &stored[i]))
	}

	got, err := ByValidator(db, validator, 10)
	require.NoError(t, err)
	require.Equal(t, []events.EventSlash{stored[3], stored[2], stored[0]}, got)

	got, err = ByValidator(db, validator, 1)
	require.NoError(t, err)
	require.Equal(t, []events.EventSlash{stored[3]}, got)

	got, err = ByValidator(db, types.RandomValidatorID(), 10)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = ByValidator(db, other, 10)
	require.NoError(t, err)
	require.Equal(t, []events.EventSlash{stored[1]}, got)
}

func TestNonFinalityIgnoresEvidence(t *testing.T) {
	db := sql.InMemory()
	slash := events.EventSlash{
		Validator:  types.RandomValidatorID(),
		Height:     3,
		Timestamp:  time.Unix(0, 5),
		Kind:       events.KindFelony,
		EvidenceID: types.RandomHash(),
	}
	require.NoError(t, Add(db, &slash))

	got, err := ByValidator(db, slash.Validator, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, types.Hash32{}, got[0].EvidenceID)
}
