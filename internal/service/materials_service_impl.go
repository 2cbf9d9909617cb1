package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/materials"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
)

type materialsService struct {
	tiles        repository.TileRepo
	stock        repository.StockRepo
	reservations repository.ReservationRepo
	requests     repository.PurchaseRequestRepo
	uow          db.UnitOfWork
	logger       *zap.Logger
	observer     UseCaseObserver
	now          func() time.Time
}

func NewMaterialsService(
	tiles repository.TileRepo,
	stock repository.StockRepo,
	reservations repository.ReservationRepo,
	requests repository.PurchaseRequestRepo,
	uow db.UnitOfWork,
	logger *zap.Logger,
	observers ...UseCaseObserver,
) MaterialsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &materialsService{
		tiles:        tiles,
		stock:        stock,
		reservations: reservations,
		requests:     requests,
		uow:          uow,
		logger:       logger.Named("materials"),
		observer:     useCaseObserverOrNoop(observers),
		now:          systemNow,
	}
}

func (s *materialsService) Summary(ctx context.Context, projectID string) ([]domain.MaterialSummary, error) {
	tiles, err := s.tiles.List(ctx, repository.TileFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	summaries, malformed := materials.Aggregate(tileSnapshots(tiles))
	for _, m := range malformed {
		s.logger.Warn("BOM line skipped",
			zap.String("tile_id", m.TileID),
			zap.String("line_id", m.LineID),
			zap.String("reason", m.Reason),
		)
	}
	return summaries, nil
}

func (s *materialsService) EstimateCosts(ctx context.Context, projectID string, opts materials.CostOptions) (*materials.CostEstimate, error) {
	tiles, err := s.tiles.List(ctx, repository.TileFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	est := materials.EstimateCosts(tileSnapshots(tiles), opts)
	return &est, nil
}

func (s *materialsService) SetStock(ctx context.Context, m *domain.StockMaterial) error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("material id is required")
	}
	if m.Name == "" || m.Unit == "" {
		return fmt.Errorf("material %s needs a name and a unit", m.ID)
	}
	if !domain.IsFinite(m.Stock) || m.Stock < 0 {
		return fmt.Errorf("stock of %s must be a non-negative number, got %g", m.ID, m.Stock)
	}
	if !domain.IsFinite(m.Price) || m.Price < 0 {
		return fmt.Errorf("price of %s must be a non-negative number, got %g", m.ID, m.Price)
	}
	return s.stock.Upsert(ctx, m)
}

func (s *materialsService) ListStock(ctx context.Context) ([]*domain.StockMaterial, error) {
	return s.stock.List(ctx)
}

func (s *materialsService) ListPurchaseRequests(ctx context.Context, status domain.PurchaseRequestStatus) ([]*domain.PurchaseRequest, error) {
	return s.requests.List(ctx, status)
}

func (s *materialsService) ListReservations(ctx context.Context, projectID string) ([]*domain.StockReservation, error) {
	return s.reservations.ListByProject(ctx, projectID)
}

// ProcessProduction reserves stock and raises purchase requests for the
// stock-linked BOM lines of a tile. A tile is processed at most once: when
// reservations or requests already exist for it, an empty plan is returned.
func (s *materialsService) ProcessProduction(ctx context.Context, tileID string) (plan *materials.ProductionPlan, err error) {
	fields := map[string]any{"tile_id": tileID}
	defer observe(ctx, s.observer, "materials.process_production", time.Now(), &err, fields)

	now := s.now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTiles := repository.NewSQLiteTileRepo(tx)
		txStock := repository.NewSQLiteStockRepo(tx)
		txReservations := repository.NewSQLiteReservationRepo(tx)
		txRequests := repository.NewSQLitePurchaseRequestRepo(tx)

		tile, err := txTiles.GetByID(ctx, tileID)
		if err != nil {
			return err
		}
		processed, err := alreadyProcessed(ctx, txReservations, txRequests, tileID)
		if err != nil {
			return err
		}
		if processed {
			fields["skipped"] = "already processed"
			plan = &materials.ProductionPlan{}
			return nil
		}

		stored, err := txStock.List(ctx)
		if err != nil {
			return err
		}
		stock := make(map[string]domain.StockMaterial, len(stored))
		for _, m := range stored {
			stock[m.ID] = *m
		}

		p := materials.PlanProduction(*tile, stock)
		for i := range p.Reservations {
			p.Reservations[i].ReservedAt = now
			if err := txReservations.Create(ctx, &p.Reservations[i]); err != nil {
				return err
			}
		}
		for i := range p.Requests {
			p.Requests[i].RequestedAt = now
			if err := txRequests.Create(ctx, &p.Requests[i]); err != nil {
				return err
			}
		}
		for id, level := range p.StockLevels {
			if err := txStock.SetStock(ctx, id, level); err != nil {
				return err
			}
		}
		plan = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["reservations"] = len(plan.Reservations)
	fields["requests"] = len(plan.Requests)
	return plan, nil
}

func alreadyProcessed(ctx context.Context, reservations repository.ReservationRepo, requests repository.PurchaseRequestRepo, tileID string) (bool, error) {
	res, err := reservations.ListByTile(ctx, tileID)
	if err != nil {
		return false, err
	}
	if len(res) > 0 {
		return true, nil
	}
	reqs, err := requests.ListByTile(ctx, tileID)
	if err != nil {
		return false, err
	}
	return len(reqs) > 0, nil
}
