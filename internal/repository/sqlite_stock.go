package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// SQLiteStockRepo implements StockRepo using a SQLite database.
type SQLiteStockRepo struct {
	db db.DBTX
}

// NewSQLiteStockRepo creates a new SQLiteStockRepo.
func NewSQLiteStockRepo(db db.DBTX) *SQLiteStockRepo {
	return &SQLiteStockRepo{db: db}
}

func (r *SQLiteStockRepo) Upsert(ctx context.Context, m *domain.StockMaterial) error {
	query := `INSERT INTO stock_materials (id, name, unit, stock, price) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, unit = excluded.unit,
			stock = excluded.stock, price = excluded.price`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Unit, m.Stock, m.Price)
	if err != nil {
		return fmt.Errorf("upserting stock material: %w", err)
	}
	return nil
}

func (r *SQLiteStockRepo) GetByID(ctx context.Context, id string) (*domain.StockMaterial, error) {
	query := `SELECT id, name, unit, stock, price FROM stock_materials WHERE id = ?`
	var m domain.StockMaterial
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Unit, &m.Stock, &m.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("stock material %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning stock material: %w", err)
	}
	return &m, nil
}

func (r *SQLiteStockRepo) List(ctx context.Context) ([]*domain.StockMaterial, error) {
	query := `SELECT id, name, unit, stock, price FROM stock_materials ORDER BY name, unit, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing stock materials: %w", err)
	}
	defer rows.Close()

	var out []*domain.StockMaterial
	for rows.Next() {
		var m domain.StockMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.Stock, &m.Price); err != nil {
			return nil, fmt.Errorf("scanning stock material row: %w", err)
		}
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock materials: %w", err)
	}
	return out, nil
}

func (r *SQLiteStockRepo) SetStock(ctx context.Context, id string, stock float64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE stock_materials SET stock = ? WHERE id = ?`, stock, id)
	if err != nil {
		return fmt.Errorf("updating stock level: %w", err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("stock material %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
