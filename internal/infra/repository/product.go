package repository

import (
	"context"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"
	"petcare-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

// ProductRepository owns the only writes ever made to stock_quantity outside
// admin CRUD. The conditional decrement is the concurrency-safety primitive
// for the whole reservation path.
type ProductRepository struct {
	db db.Querier
}

func NewProductRepository(q db.Querier) *ProductRepository {
	return &ProductRepository{db: q}
}

// TryDecrementStock is the compare-and-decrement: the UPDATE matches only
// when current stock covers the demand, so two requests racing for the last
// units are serialized by the row lock and at most one succeeds.
func (r *ProductRepository) TryDecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products
		 SET stock_quantity = stock_quantity - $2
		 WHERE id = $1 AND stock_quantity >= $2`,
		productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Zero rows means either the product is gone or the stock was short;
	// the caller needs to know which.
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check product existence", err)
	}
	if !exists {
		return infra.NewRepoErr("product not found", infra.KindNotFound)
	}
	return infra.NewRepoErr("insufficient stock", infra.KindInsufficientStock)
}

func (r *ProductRepository) IncrementStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products
		 SET stock_quantity = stock_quantity + $2
		 WHERE id = $1`,
		productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to increment stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("product not found", infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ProductSnapshot, error) {
	var snap commands.ProductSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, name, price, stock_quantity FROM products WHERE id = $1`, id).
		Scan(&snap.ID, &snap.Name, &snap.Price, &snap.StockQuantity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return &snap, nil
}
