package sql

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func persistentDB(tb testing.TB) string {
	return "file:" + filepath.Join(tb.TempDir(), "state.sql")
}

func TestTransactionIsolation(t *testing.T) {
	db := InMemory()
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	tx, err := db.Tx(context.Background())
	require.NoError(t, err)

	key := []byte{1, 1}
	_, err = tx.Exec("insert into indicators (validator, position, last_height, count) values (?1, 0, 10, 1)",
		func(stmt *Statement) {
			stmt.BindBytes(1, key)
		}, nil)
	require.NoError(t, err)

	var count int64
	_, err = tx.Exec("select count from indicators where validator = ?1", func(stmt *Statement) {
		stmt.BindBytes(1, key)
	}, func(stmt *Statement) bool {
		count = stmt.ColumnInt64(0)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	require.NoError(t, tx.Release())

	rows, err := db.Exec("select count from indicators where validator = ?1", func(stmt *Statement) {
		stmt.BindBytes(1, key)
	}, nil)
	require.NoError(t, err)
	require.Zero(t, rows)
}

func TestWithTxRollback(t *testing.T) {
	db := InMemory()
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	failure := errors.New("abort")
	err := db.WithTx(context.Background(), func(tx *Tx) error {
		_, err := tx.Exec("insert into indicators (validator, position, last_height, count) values (x'01', 0, 1, 1)",
			nil, nil)
		require.NoError(t, err)
		return failure
	})
	require.ErrorIs(t, err, failure)

	rows, err := db.Exec("select 1 from indicators", nil, nil)
	require.NoError(t, err)
	require.Zero(t, rows)

	require.NoError(t, db.WithTx(context.Background(), func(tx *Tx) error {
		_, err := tx.Exec("insert into indicators (validator, position, last_height, count) values (x'01', 0, 1, 1)",
			nil, nil)
		return err
	}))
	rows, err = db.Exec("select 1 from indicators", nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, rows)
}

func TestObjectExists(t *testing.T) {
	db := InMemory()
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	insert := "insert into indicators (validator, position, last_height, count) values (x'02', 0, 1, 1)"
	_, err := db.Exec(insert, nil, nil)
	require.NoError(t, err)
	_, err = db.Exec(insert, nil, nil)
	require.ErrorIs(t, err, ErrObjectExists)
}

func TestMigrationsApplied(t *testing.T) {
	uri := persistentDB(t)
	db, err := Open(uri)
	require.NoError(t, err)

	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	current, err := version(db)
	require.NoError(t, err)
	require.Equal(t, migrations[len(migrations)-1].order, current)

	_, err = db.Exec("insert into slash_state (id, watermark, misdemeanor_threshold, felony_threshold, decay_rate, finality_reward_ratio) values (1, 7, 1, 2, 1, 20)",
		nil, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// reopening must not reapply migrations
	db, err = Open(uri)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })
	var watermark int64
	rows, err := db.Exec("select watermark from slash_state where id = 1", nil, func(stmt *Statement) bool {
		watermark = stmt.ColumnInt64(0)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 1, rows)
	require.Equal(t, int64(7), watermark)
}

func TestSingleStateRow(t *testing.T) {
	db := InMemory()
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	_, err := db.Exec("insert into slash_state (id, watermark, misdemeanor_threshold, felony_threshold, decay_rate, finality_reward_ratio) values (2, 7, 1, 2, 1, 20)",
		nil, nil)
	require.Error(t, err)
}

func TestCustomMigrations(t *testing.T) {
	called := false
	db := InMemory(WithMigrations(func(Executor) error {
		called = true
		return nil
	}))
	t.Cleanup(func() { require.NoError(t, db.Close()) })
	require.True(t, called)

	_, err := db.Exec("select 1 from indicators", nil, nil)
	require.Error(t, err)
}
