package indicators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/slashing"
	"github.com/spacemeshos/go-slashindicator/sql"
)

func snapshotWith(n int, watermark types.Height) slashing.Snapshot {
	snapshot := slashing.Snapshot{
		Watermark: watermark,
		Params: slashing.Params{
			MisdemeanorThreshold: 3,
			FelonyThreshold:      9,
			DecayRate:            3,
			FinalityRewardRatio:  25,
		},
	}
	for i := 0; i < n; i++ {
		snapshot.Indicators = append(snapshot.Indicators, slashing.ValidatorIndicator{
			Validator: types.RandomValidatorID(),
			Indicator: slashing.Indicator{
				LastHeight: types.Height(i + 1),
				Count:      uint64(i),
			},
		})
	}
	return snapshot
}

func TestLoadEmpty(t *testing.T) {
	db := sql.InMemory()
	_, err := Load(db)
	require.ErrorIs(t, err, sql.ErrNotFound)
}

func TestSaveLoad(t *testing.T) {
	db := sql.InMemory()
	snapshot := snapshotWith(10, 42)
	require.NoError(t, db.WithTx(context.Background(), func(tx *sql.Tx) error {
		return Save(tx, snapshot)
	}))

	loaded, err := Load(db)
	require.NoError(t, err)
	require.Equal(t, snapshot, loaded)
}

func TestSaveReplaces(t *testing.T) {
	db := sql.InMemory()
	require.NoError(t, Save(db, snapshotWith(10, 42)))

	next := snapshotWith(3, 50)
	next.Params.FinalityRewardRatio = 0
	require.NoError(t, Save(db, next))

	loaded, err := Load(db)
	require.NoError(t, err)
	require.Equal(t, next, loaded)

	require.NoError(t, Save(db, snapshotWith(0, 51)))
	loaded, err = Load(db)
	require.NoError(t, err)
	require.Empty(t, loaded.Indicators)
	require.Equal(t, types.Height(51), loaded.Watermark)
}

func TestSaveRollback(t *testing.T) {
	db := sql.InMemory()
	snapshot := snapshotWith(2, 10)
	require.NoError(t, Save(db, snapshot))

	broken := snapshotWith(2, 11)
	broken.Indicators[1].Validator = broken.Indicators[0].Validator
	err := db.WithTx(context.Background(), func(tx *sql.Tx) error {
		return Save(tx, broken)
	})
	require.ErrorIs(t, err, sql.ErrObjectExists)

	loaded, err := Load(db)
	require.NoError(t, err)
	require.Equal(t, snapshot, loaded)
}

func TestRestoreIntoSlasher(t *testing.T) {
	db := sql.InMemory()
	snapshot := snapshotWith(5, 99)
	require.NoError(t, Save(db, snapshot))

	loaded, err := Load(db)
	require.NoError(t, err)
	slasher, err := slashing.New(nil, nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, slasher.Restore(loaded))
	require.Equal(t, snapshot, slasher.Snapshot())
}
