package commands

import (
	"context"

	"petcare-backend/internal/domain/healthrecord"
	"petcare-backend/internal/domain/order"
	"petcare-backend/internal/domain/pet"
	"petcare-backend/internal/domain/schedule"
	"petcare-backend/internal/usecase/stock"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ProductSnapshot struct {
	ID            uuid.UUID
	Name          string
	Price         float64
	StockQuantity int
}

type ServiceSnapshot struct {
	ID    uuid.UUID
	Name  string
	Price float64
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error
}

type ProductReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
}

type ServiceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
}

type PetRepository interface {
	Create(ctx context.Context, p *pet.Pet) error
	FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error)
}

type HealthRecordRepository interface {
	Create(ctx context.Context, r *healthrecord.HealthRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*healthrecord.HealthRecord, error)
	Update(ctx context.Context, r *healthrecord.HealthRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepository interface {
	Create(ctx context.Context, e *schedule.ScheduledEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.ScheduledEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StockReserver is the reservation engine seen from the command side.
type StockReserver interface {
	Reserve(ctx context.Context, demands []stock.Demand) error
	Release(ctx context.Context, demands []stock.Demand) stock.ReleaseResult
}
