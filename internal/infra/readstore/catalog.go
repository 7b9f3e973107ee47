package readstore

import (
	"context"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"
	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProductReadStore struct {
	db db.Querier
}

func NewProductReadStore(q db.Querier) *ProductReadStore {
	return &ProductReadStore{db: q}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	var (
		view        queries.ProductView
		description pgtype.Text
		createdAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, price, stock_quantity, description, created_at FROM products WHERE id = $1`, id).
		Scan(&view.ID, &view.Name, &view.Price, &view.StockQuantity, &description, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product view", err)
	}
	view.Description = pgconv.StringPtrFromPgtype(description)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func (r *ProductReadStore) List(ctx context.Context, limit, offset int) ([]queries.ProductView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, price, stock_quantity, description, created_at FROM products
		 ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var views []queries.ProductView
	for rows.Next() {
		var (
			view        queries.ProductView
			description pgtype.Text
			createdAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Price, &view.StockQuantity, &description, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product view", err)
		}
		view.Description = pgconv.StringPtrFromPgtype(description)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product views", err)
	}
	return views, nil
}

type ServiceReadStore struct {
	db db.Querier
}

func NewServiceReadStore(q db.Querier) *ServiceReadStore {
	return &ServiceReadStore{db: q}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	var (
		view        queries.ServiceView
		description pgtype.Text
		createdAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, price, description, created_at FROM services WHERE id = $1`, id).
		Scan(&view.ID, &view.Name, &view.Price, &description, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service view", err)
	}
	view.Description = pgconv.StringPtrFromPgtype(description)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func (r *ServiceReadStore) List(ctx context.Context, limit, offset int) ([]queries.ServiceView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, price, description, created_at FROM services
		 ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var views []queries.ServiceView
	for rows.Next() {
		var (
			view        queries.ServiceView
			description pgtype.Text
			createdAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Price, &description, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service view", err)
		}
		view.Description = pgconv.StringPtrFromPgtype(description)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service views", err)
	}
	return views, nil
}
