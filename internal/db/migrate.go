package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		number      TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		client      TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'Nowy'
		            CHECK(status IN ('Nowy','W realizacji','Wstrzymany','Zakończony','Anulowany')),
		deadline    TEXT,
		budget      REAL NOT NULL DEFAULT 0,
		manager     TEXT NOT NULL DEFAULT '',
		version     INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_number ON projects(number) WHERE number != ''`,

	`CREATE TABLE IF NOT EXISTS tiles (
		id          TEXT PRIMARY KEY,
		project_id  TEXT REFERENCES projects(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'W KOLEJCE'
		            CHECK(status IN ('W KOLEJCE','Projektowanie','W trakcie projektowania','Do akceptacji',
		                             'Zaakceptowane','W TRAKCIE CIĘCIA','WYCIĘTE','Wstrzymany',
		                             'Wymagają poprawek','Gotowy do montażu','Zakończony')),
		labor_cost  REAL NOT NULL DEFAULT 0 CHECK(labor_cost >= 0),
		priority    TEXT NOT NULL DEFAULT '',
		designer    TEXT NOT NULL DEFAULT '',
		deadline    TEXT,
		version     INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tiles_project ON tiles(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tiles_status ON tiles(status)`,

	`CREATE TABLE IF NOT EXISTS bom_lines (
		id          TEXT PRIMARY KEY,
		tile_id     TEXT NOT NULL REFERENCES tiles(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL DEFAULT 0,
		type        TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		quantity    REAL NOT NULL CHECK(quantity > 0),
		unit        TEXT NOT NULL,
		unit_cost   REAL CHECK(unit_cost IS NULL OR unit_cost >= 0),
		status      TEXT NOT NULL DEFAULT '',
		supplier    TEXT NOT NULL DEFAULT '',
		material_id TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bom_lines_tile ON bom_lines(tile_id)`,

	`CREATE TABLE IF NOT EXISTS tile_dependencies (
		tile_id       TEXT NOT NULL REFERENCES tiles(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL REFERENCES tiles(id) ON DELETE CASCADE,
		PRIMARY KEY (tile_id, depends_on_id),
		CHECK(tile_id != depends_on_id)
	)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id     TEXT PRIMARY KEY,
		title  TEXT NOT NULL,
		color  TEXT NOT NULL DEFAULT '',
		type   TEXT NOT NULL DEFAULT 'team'
		       CHECK(type IN ('project','designer','team'))
	)`,

	// resource_id, tile_id and project_id are lookup references only.
	`CREATE TABLE IF NOT EXISTS calendar_events (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		start_at    TEXT NOT NULL,
		end_at      TEXT NOT NULL,
		resource_id TEXT NOT NULL DEFAULT '',
		phase       TEXT NOT NULL DEFAULT '',
		tags        TEXT NOT NULL DEFAULT '[]',
		tile_id     TEXT NOT NULL DEFAULT '',
		project_id  TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		CHECK(end_at > start_at)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_resource ON calendar_events(resource_id, start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_events_project ON calendar_events(project_id)`,

	`CREATE TABLE IF NOT EXISTS stock_materials (
		id     TEXT PRIMARY KEY,
		name   TEXT NOT NULL,
		unit   TEXT NOT NULL,
		stock  REAL NOT NULL DEFAULT 0,
		price  REAL NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS stock_reservations (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL,
		tile_id       TEXT NOT NULL,
		material_id   TEXT NOT NULL,
		material_name TEXT NOT NULL,
		quantity      REAL NOT NULL,
		unit          TEXT NOT NULL,
		reserved_by   TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'reserved'
		              CHECK(status IN ('reserved','released')),
		reserved_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reservations_tile ON stock_reservations(tile_id)`,

	`CREATE TABLE IF NOT EXISTS purchase_requests (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL,
		tile_id       TEXT NOT NULL,
		material_id   TEXT NOT NULL,
		material_name TEXT NOT NULL,
		quantity      REAL NOT NULL,
		unit          TEXT NOT NULL,
		requested_by  TEXT NOT NULL,
		priority      TEXT NOT NULL DEFAULT 'low'
		              CHECK(priority IN ('high','medium','low')),
		status        TEXT NOT NULL DEFAULT 'pending'
		              CHECK(status IN ('pending','ordered','received')),
		notes         TEXT NOT NULL DEFAULT '',
		requested_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_purchase_requests_tile ON purchase_requests(tile_id)`,

	// Technology was added to tiles after the first release.
	`ALTER TABLE tiles ADD COLUMN technology TEXT NOT NULL DEFAULT ''`,
}
