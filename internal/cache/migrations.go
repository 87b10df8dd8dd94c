package cache

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshots (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	artist_id  INTEGER NOT NULL DEFAULT 0,
	payload    TEXT NOT NULL,
	fetched_at DATETIME NOT NULL,
	UNIQUE(kind, artist_id)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_fetched_at ON snapshots(fetched_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
