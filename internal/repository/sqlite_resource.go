package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// SQLiteResourceRepo implements ResourceRepo using a SQLite database.
type SQLiteResourceRepo struct {
	db db.DBTX
}

// NewSQLiteResourceRepo creates a new SQLiteResourceRepo.
func NewSQLiteResourceRepo(db db.DBTX) *SQLiteResourceRepo {
	return &SQLiteResourceRepo{db: db}
}

func (r *SQLiteResourceRepo) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, title, color, type) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, res.ID, res.Title, res.Color, string(res.Type))
	if err != nil {
		return fmt.Errorf("inserting resource: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	query := `SELECT id, title, color, type FROM resources WHERE id = ?`
	var res domain.Resource
	var typ string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&res.ID, &res.Title, &res.Color, &typ)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("resource %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning resource: %w", err)
	}
	res.Type = domain.ResourceType(typ)
	return &res, nil
}

func (r *SQLiteResourceRepo) List(ctx context.Context) ([]*domain.Resource, error) {
	query := `SELECT id, title, color, type FROM resources ORDER BY type, title, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var out []*domain.Resource
	for rows.Next() {
		var res domain.Resource
		var typ string
		if err := rows.Scan(&res.ID, &res.Title, &res.Color, &typ); err != nil {
			return nil, fmt.Errorf("scanning resource row: %w", err)
		}
		res.Type = domain.ResourceType(typ)
		out = append(out, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return out, nil
}
