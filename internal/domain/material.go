package domain

import "time"

// MaterialSummary is the project-wide rollup of BOM lines sharing the same
// (name, unit). It is derived on demand and never stored.
type MaterialSummary struct {
	Name          string
	Unit          string
	Type          BOMLineType
	UnitCost      float64
	TotalQuantity float64
	TotalCost     float64
	Status        BOMLineStatus
	Projects      []string // distinct project ids, sorted
	Tiles         []string // distinct tile ids, sorted
}

// StockMaterial is a warehouse material that BOM lines may link to.
type StockMaterial struct {
	ID    string
	Name  string
	Unit  string
	Stock float64
	Price float64
}

type ReservationStatus string

const (
	ReservationReserved ReservationStatus = "reserved"
	ReservationReleased ReservationStatus = "released"
)

// StockReservation holds warehouse stock for a tile entering production.
type StockReservation struct {
	ID           string
	ProjectID    string
	TileID       string
	MaterialID   string
	MaterialName string
	Quantity     float64
	Unit         string
	ReservedBy   string
	Status       ReservationStatus
	ReservedAt   time.Time
}

type RequestPriority string

const (
	RequestHigh   RequestPriority = "high"
	RequestMedium RequestPriority = "medium"
	RequestLow    RequestPriority = "low"
)

// RequestPriorityFor maps a tile priority to a purchase request priority.
func RequestPriorityFor(p Priority) RequestPriority {
	switch p {
	case PriorityHigh:
		return RequestHigh
	case PriorityMedium:
		return RequestMedium
	default:
		return RequestLow
	}
}

type PurchaseRequestStatus string

const (
	PurchasePending  PurchaseRequestStatus = "pending"
	PurchaseOrdered  PurchaseRequestStatus = "ordered"
	PurchaseReceived PurchaseRequestStatus = "received"
)

// PurchaseRequest asks procurement for material a tile is missing.
type PurchaseRequest struct {
	ID           string
	ProjectID    string
	TileID       string
	MaterialID   string
	MaterialName string
	Quantity     float64
	Unit         string
	RequestedBy  string
	Priority     RequestPriority
	Status       PurchaseRequestStatus
	Notes        string
	RequestedAt  time.Time
}
