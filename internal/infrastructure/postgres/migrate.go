package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL del hub. Idempotente: se aplica en cada arranque.
// Constraints que encodean los invariantes del dominio:
//   - periods (month, year) único
//   - users.username, outlets.name, kpis.name únicos
//   - updates (outlet_id, period_id, kpi_id) único (soporta el upsert)
//   - todas las referencias con FK
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL CHECK (role IN ('admin', 'manager')),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS outlets (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	manager_id TEXT REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS periods (
	id         TEXT PRIMARY KEY,
	month      INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
	year       INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (month, year)
);

CREATE TABLE IF NOT EXISTS kpis (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS updates (
	id         TEXT PRIMARY KEY,
	outlet_id  TEXT NOT NULL REFERENCES outlets(id),
	period_id  TEXT NOT NULL REFERENCES periods(id),
	kpi_id     TEXT NOT NULL REFERENCES kpis(id),
	value      NUMERIC NOT NULL,
	note       TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (outlet_id, period_id, kpi_id)
);

CREATE TABLE IF NOT EXISTS feedback (
	id         TEXT PRIMARY KEY,
	outlet_id  TEXT NOT NULL REFERENCES outlets(id),
	period_id  TEXT NOT NULL REFERENCES periods(id),
	text       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS files (
	id         TEXT PRIMARY KEY,
	outlet_id  TEXT NOT NULL REFERENCES outlets(id),
	period_id  TEXT NOT NULL REFERENCES periods(id),
	path       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_updates_outlet_kpi ON updates (outlet_id, kpi_id);
CREATE INDEX IF NOT EXISTS idx_updates_outlet_period ON updates (outlet_id, period_id);
CREATE INDEX IF NOT EXISTS idx_feedback_outlet ON feedback (outlet_id);
CREATE INDEX IF NOT EXISTS idx_files_outlet_period ON files (outlet_id, period_id);
`

// Migrate aplica el esquema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
