package journal

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) Record(d Decision) error {
	_, err := j.db.Exec(`
		INSERT INTO decisions
		(id, instance_id, symbol, bar_time, signals, signal_bits, lots,
		 entry_price, broker_stop, internal_stop, broker_take, internal_take, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.InstanceID, d.Symbol, d.BarTime, d.Signals, d.SignalBits,
		d.Lots, d.EntryPrice, d.BrokerStop, d.InternalStop, d.BrokerTake,
		d.InternalTake, d.Reason,
	)
	return err
}

// ByInstance returns the decisions recorded for one instance in bar-time
// order.
func (j *SQLiteJournal) ByInstance(ctx context.Context, instanceID int) ([]Decision, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, instance_id, symbol, bar_time, signals, signal_bits, lots,
		       entry_price, broker_stop, internal_stop, broker_take, internal_take, reason
		FROM decisions
		WHERE instance_id = ?
		ORDER BY bar_time, id`, instanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Decision
	for rows.Next() {
		var d Decision
		err := rows.Scan(&d.ID, &d.InstanceID, &d.Symbol, &d.BarTime,
			&d.Signals, &d.SignalBits, &d.Lots, &d.EntryPrice,
			&d.BrokerStop, &d.InternalStop, &d.BrokerTake, &d.InternalTake,
			&d.Reason)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
