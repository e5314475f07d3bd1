// Package slashes stores the history of escalations.
package slashes

import (
	"fmt"
	"time"

	"github.com/spacemeshos/go-slashindicator/common/types"
	"github.com/spacemeshos/go-slashindicator/events"
	"github.com/spacemeshos/go-slashindicator/sql"
)

// Add appends a slash to the history.
func Add(db sql.Executor, slash *events.EventSlash) error {
	if _, err := db.Exec(`insert into slashes
			(validator, kind, height, timestamp, evidence, submitter, reward)
			values (?1, ?2, ?3, ?4, ?5, ?6, ?7);`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, slash.Validator[:])
			stmt.BindText(2, string(slash.Kind))
			stmt.BindInt64(3, int64(slash.Height))
			stmt.BindInt64(4, slash.Timestamp.UnixNano())
			if slash.Kind == events.KindFinality {
				stmt.BindBytes(5, slash.EvidenceID[:])
				stmt.BindBytes(6, slash.Submitter[:])
			} else {
				stmt.BindNull(5)
				stmt.BindNull(6)
			}
			stmt.BindInt64(7, int64(slash.Reward))
		}, nil); err != nil {
		return fmt.Errorf("insert slash for %s: %w", slash.Validator, err)
	}
	return nil
}

func decode(stmt *sql.Statement) events.EventSlash {
	var slash events.EventSlash
	stmt.ColumnBytes(0, slash.Validator[:])
	slash.Kind = events.Kind(stmt.ColumnText(1))
	slash.Height = types.Height(stmt.ColumnInt64(2))
	slash.Timestamp = time.Unix(0, stmt.ColumnInt64(3))
	if !sql.IsNull(stmt, 4) {
		stmt.ColumnBytes(4, slash.EvidenceID[:])
	}
	if !sql.IsNull(stmt, 5) {
		stmt.ColumnBytes(5, slash.Submitter[:])
	}
	slash.Reward = types.Amount(stmt.ColumnInt64(6))
	return slash
}

// ByValidator returns up to limit most recent slashes of validator, newest first.
func ByValidator(db sql.Executor, validator types.ValidatorID, limit int) ([]events.EventSlash, error) {
	var rst []events.EventSlash
	if _, err := db.Exec(`select validator, kind, height, timestamp, evidence, submitter, reward
		from slashes where validator = ?1 order by id desc limit ?2;`,
		func(stmt *sql.Statement) {
			stmt.BindBytes(1, validator[:])
			stmt.BindInt64(2, int64(limit))
		}, func(stmt *sql.Statement) bool {
			rst = append(rst, decode(stmt))
			return true
		}); err != nil {
		return nil, fmt.Errorf("slashes by %s: %w", validator, err)
	}
	return rst, nil
}
