// Package indicators persists the state of the slashing registry.
package indicators

import (
	"fmt"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/slashing"
	"github.com/spacemeshos/go-slashindicator/sql"
)

// Save replaces the stored state with snapshot.
// Callers are expected to run it inside a transaction.
func Save(db sql.Executor, snapshot slashing.Snapshot) error {
	if _, err := db.Exec("delete from indicators;", nil, nil); err != nil {
		return fmt.Errorf("clear indicators: %w", err)
	}
	for i := range snapshot.Indicators {
		indicator := &snapshot.Indicators[i]
		if _, err := db.Exec(`insert into indicators (validator, position, last_height, count)
			values (?1, ?2, ?3, ?4);`,
			func(stmt *sql.Statement) {
				stmt.BindBytes(1, indicator.Validator[:])
				stmt.BindInt64(2, int64(i))
				stmt.BindInt64(3, int64(indicator.LastHeight))
				stmt.BindInt64(4, int64(indicator.Count))
			}, nil); err != nil {
			return fmt.Errorf("insert indicator %s: %w", indicator.Validator, err)
		}
	}
	params := snapshot.Params
	if _, err := db.Exec(`insert into slash_state
			(id, watermark, misdemeanor_threshold, felony_threshold, decay_rate, finality_reward_ratio)
			values (1, ?1, ?2, ?3, ?4, ?5)
		on conflict (id) do update set
			watermark = excluded.watermark,
			misdemeanor_threshold = excluded.misdemeanor_threshold,
			felony_threshold = excluded.felony_threshold,
			decay_rate = excluded.decay_rate,
			finality_reward_ratio = excluded.finality_reward_ratio;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(snapshot.Watermark))
			stmt.BindInt64(2, int64(params.MisdemeanorThreshold))
			stmt.BindInt64(3, int64(params.FelonyThreshold))
			stmt.BindInt64(4, int64(params.DecayRate))
			stmt.BindInt64(5, int64(params.FinalityRewardRatio))
		}, nil); err != nil {
		return fmt.Errorf("save slashing state: %w", err)
	}
	return nil
}

// Load returns the stored state. If nothing was saved yet returns sql.ErrNotFound.
func Load(db sql.Executor) (slashing.Snapshot, error) {
	var snapshot slashing.Snapshot
	rows, err := db.Exec(`select watermark, misdemeanor_threshold, felony_threshold, decay_rate, finality_reward_ratio
		from slash_state where id = 1;`, nil,
		func(stmt *sql.Statement) bool {
			snapshot.Watermark = types.Height(stmt.ColumnInt64(0))
			snapshot.Params = slashing.Params{
				MisdemeanorThreshold: uint64(stmt.ColumnInt64(1)),
				FelonyThreshold:      uint64(stmt.ColumnInt64(2)),
				DecayRate:            uint64(stmt.ColumnInt64(3)),
				FinalityRewardRatio:  uint64(stmt.ColumnInt64(4)),
			}
			return true
		})
	if err != nil {
		return slashing.Snapshot{}, fmt.Errorf("load slashing state: %w", err)
	}
	if rows == 0 {
		return slashing.Snapshot{}, fmt.Errorf("slashing state %w", sql.ErrNotFound)
	}
	if _, err := db.Exec("select validator, last_height, count from indicators order by position;", nil,
		func(stmt *sql.Statement) bool {
			var indicator slashing.ValidatorIndicator
			stmt.ColumnBytes(0, indicator.Validator[:])
			indicator.LastHeight = types.Height(stmt.ColumnInt64(1))
			indicator.Count = uint64(stmt.ColumnInt64(2))
			snapshot.Indicators = append(snapshot.Indicators, indicator)
			return true
		}); err != nil {
		return slashing.Snapshot{}, fmt.Errorf("load indicators: %w", err)
	}
	return snapshot, nil
}
