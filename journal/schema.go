package journal

const Schema = `
CREATE TABLE IF NOT EXISTS decisions (
	id TEXT PRIMARY KEY,
	instance_id INTEGER NOT NULL,
	symbol TEXT NOT NULL,
	bar_time DATETIME NOT NULL,
	signals TEXT NOT NULL,
	signal_bits INTEGER NOT NULL,
	lots REAL NOT NULL,
	entry_price REAL NOT NULL,
	broker_stop REAL NOT NULL,
	internal_stop REAL NOT NULL,
	broker_take REAL NOT NULL,
	internal_take REAL NOT NULL,
	reason TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decisions_instance ON decisions(instance_id, bar_time);
`
