package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrice  = errors.New("price must be positive")
	ErrNegativeStock = errors.New("stock quantity cannot be negative")
	ErrEmptyName     = errors.New("product name cannot be empty")
)

// Product is the catalog entry whose stock_quantity counter is the only
// concurrency-critical shared state in the system. The counter is mutated
// exclusively through the stock engine's conditional decrement/increment;
// this entity never mutates stock in memory.
type Product struct {
	id            uuid.UUID
	name          string
	price         float64
	stockQuantity int
	description   *string
	createdAt     time.Time
}

func NewProduct(name string, price float64, stockQuantity int, description *string) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if stockQuantity < 0 {
		return nil, ErrNegativeStock
	}
	return &Product{
		id:            uuid.New(),
		name:          name,
		price:         price,
		stockQuantity: stockQuantity,
		description:   description,
	}, nil
}

func ReconstructProduct(id uuid.UUID, name string, price float64, stockQuantity int, description *string, createdAt time.Time) *Product {
	return &Product{
		id:            id,
		name:          name,
		price:         price,
		stockQuantity: stockQuantity,
		description:   description,
		createdAt:     createdAt,
	}
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Price() float64       { return p.price }
func (p *Product) StockQuantity() int   { return p.stockQuantity }
func (p *Product) Description() *string { return p.description }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

func (p *Product) HasStock(quantity int) bool {
	return p.stockQuantity >= quantity
}
