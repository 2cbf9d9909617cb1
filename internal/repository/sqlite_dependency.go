package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo using a SQLite database.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(db db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: db}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d domain.TileDependency) error {
	// A repeated edge is a no-op; the self-dependency CHECK still fails.
	query := `INSERT INTO tile_dependencies (tile_id, depends_on_id) VALUES (?, ?)
		ON CONFLICT(tile_id, depends_on_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, d.TileID, d.DependsOnID)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, tileID, dependsOnID string) error {
	query := `DELETE FROM tile_dependencies WHERE tile_id = ? AND depends_on_id = ?`
	_, err := r.db.ExecContext(ctx, query, tileID, dependsOnID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

// ListPrerequisites returns the tiles tileID depends on.
func (r *SQLiteDependencyRepo) ListPrerequisites(ctx context.Context, tileID string) ([]domain.TileDependency, error) {
	query := `SELECT tile_id, depends_on_id FROM tile_dependencies
		WHERE tile_id = ? ORDER BY depends_on_id`
	rows, err := r.db.QueryContext(ctx, query, tileID)
	if err != nil {
		return nil, fmt.Errorf("listing prerequisites: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

// ListDependents returns the tiles that depend on tileID.
func (r *SQLiteDependencyRepo) ListDependents(ctx context.Context, tileID string) ([]domain.TileDependency, error) {
	query := `SELECT tile_id, depends_on_id FROM tile_dependencies
		WHERE depends_on_id = ? ORDER BY tile_id`
	rows, err := r.db.QueryContext(ctx, query, tileID)
	if err != nil {
		return nil, fmt.Errorf("listing dependents: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) HasUnfinishedPrerequisites(ctx context.Context, tileID string) (bool, error) {
	query := `SELECT COUNT(*) FROM tile_dependencies d
		JOIN tiles t ON d.depends_on_id = t.id
		WHERE d.tile_id = ?
		  AND t.status != ?`
	var count int
	err := r.db.QueryRowContext(ctx, query, tileID, string(domain.TileDone)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking unfinished prerequisites: %w", err)
	}
	return count > 0, nil
}

// scanDependencies scans multiple dependency rows from *sql.Rows.
func (r *SQLiteDependencyRepo) scanDependencies(rows *sql.Rows) ([]domain.TileDependency, error) {
	var deps []domain.TileDependency
	for rows.Next() {
		var d domain.TileDependency
		if err := rows.Scan(&d.TileID, &d.DependsOnID); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}
