package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// SQLiteReservationRepo implements ReservationRepo using a SQLite database.
type SQLiteReservationRepo struct {
	db db.DBTX
}

// NewSQLiteReservationRepo creates a new SQLiteReservationRepo.
func NewSQLiteReservationRepo(db db.DBTX) *SQLiteReservationRepo {
	return &SQLiteReservationRepo{db: db}
}

const reservationColumns = `id, project_id, tile_id, material_id, material_name, quantity, unit, reserved_by, status, reserved_at`

func (r *SQLiteReservationRepo) Create(ctx context.Context, res *domain.StockReservation) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	query := `INSERT INTO stock_reservations (` + reservationColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.ProjectID, res.TileID, res.MaterialID, res.MaterialName,
		res.Quantity, res.Unit, res.ReservedBy, string(res.Status), timeToString(res.ReservedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting stock reservation: %w", err)
	}
	return nil
}

func (r *SQLiteReservationRepo) ListByTile(ctx context.Context, tileID string) ([]*domain.StockReservation, error) {
	return r.list(ctx, `WHERE tile_id = ?`, tileID)
}

func (r *SQLiteReservationRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.StockReservation, error) {
	return r.list(ctx, `WHERE project_id = ?`, projectID)
}

func (r *SQLiteReservationRepo) list(ctx context.Context, where string, args ...any) ([]*domain.StockReservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM stock_reservations ` + where + ` ORDER BY reserved_at, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing stock reservations: %w", err)
	}
	defer rows.Close()

	var out []*domain.StockReservation
	for rows.Next() {
		var res domain.StockReservation
		var status, reservedAt string
		if err := rows.Scan(&res.ID, &res.ProjectID, &res.TileID, &res.MaterialID, &res.MaterialName,
			&res.Quantity, &res.Unit, &res.ReservedBy, &status, &reservedAt); err != nil {
			return nil, fmt.Errorf("scanning stock reservation: %w", err)
		}
		res.Status = domain.ReservationStatus(status)
		if res.ReservedAt, err = parseTime("reserved_at", reservedAt); err != nil {
			return nil, err
		}
		out = append(out, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock reservations: %w", err)
	}
	return out, nil
}

// SQLitePurchaseRequestRepo implements PurchaseRequestRepo using a SQLite database.
type SQLitePurchaseRequestRepo struct {
	db db.DBTX
}

// NewSQLitePurchaseRequestRepo creates a new SQLitePurchaseRequestRepo.
func NewSQLitePurchaseRequestRepo(db db.DBTX) *SQLitePurchaseRequestRepo {
	return &SQLitePurchaseRequestRepo{db: db}
}

const purchaseRequestColumns = `id, project_id, tile_id, material_id, material_name, quantity, unit, requested_by, priority, status, notes, requested_at`

func (r *SQLitePurchaseRequestRepo) Create(ctx context.Context, pr *domain.PurchaseRequest) error {
	if pr.ID == "" {
		pr.ID = uuid.New().String()
	}
	query := `INSERT INTO purchase_requests (` + purchaseRequestColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		pr.ID, pr.ProjectID, pr.TileID, pr.MaterialID, pr.MaterialName, pr.Quantity, pr.Unit,
		pr.RequestedBy, string(pr.Priority), string(pr.Status), pr.Notes, timeToString(pr.RequestedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting purchase request: %w", err)
	}
	return nil
}

func (r *SQLitePurchaseRequestRepo) ListByTile(ctx context.Context, tileID string) ([]*domain.PurchaseRequest, error) {
	return r.list(ctx, `WHERE tile_id = ?`, tileID)
}

// List returns requests with the given status, or all requests when status is empty.
func (r *SQLitePurchaseRequestRepo) List(ctx context.Context, status domain.PurchaseRequestStatus) ([]*domain.PurchaseRequest, error) {
	if status == "" {
		return r.list(ctx, ``)
	}
	return r.list(ctx, `WHERE status = ?`, string(status))
}

func (r *SQLitePurchaseRequestRepo) list(ctx context.Context, where string, args ...any) ([]*domain.PurchaseRequest, error) {
	query := `SELECT ` + purchaseRequestColumns + ` FROM purchase_requests ` + where + `
		ORDER BY CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, requested_at, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing purchase requests: %w", err)
	}
	defer rows.Close()

	var out []*domain.PurchaseRequest
	for rows.Next() {
		var pr domain.PurchaseRequest
		var priority, status, requestedAt string
		if err := rows.Scan(&pr.ID, &pr.ProjectID, &pr.TileID, &pr.MaterialID, &pr.MaterialName, &pr.Quantity,
			&pr.Unit, &pr.RequestedBy, &priority, &status, &pr.Notes, &requestedAt); err != nil {
			return nil, fmt.Errorf("scanning purchase request: %w", err)
		}
		pr.Priority = domain.RequestPriority(priority)
		pr.Status = domain.PurchaseRequestStatus(status)
		if pr.RequestedAt, err = parseTime("requested_at", requestedAt); err != nil {
			return nil, err
		}
		out = append(out, &pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchase requests: %w", err)
	}
	return out, nil
}
