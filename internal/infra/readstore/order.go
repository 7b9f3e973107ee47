package readstore

import (
	"context"
	"encoding/json"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"
	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.Querier
}

func NewOrderReadStore(q db.Querier) *OrderReadStore {
	return &OrderReadStore{db: q}
}

const orderViewColumns = `id, user_email, user_name, items, shipping_info, total, status, created_at, updated_at`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderViewColumns+` FROM orders WHERE id = $1`, id)
	view, err := scanOrderView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view", err)
	}
	return view, nil
}

func (r *OrderReadStore) ListByEmail(ctx context.Context, email string) ([]queries.OrderView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderViewColumns+` FROM orders
		 WHERE LOWER(user_email) = LOWER($1)
		 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by email", err)
	}
	defer rows.Close()
	return collectOrderViews(rows)
}

func (r *OrderReadStore) ListAll(ctx context.Context, limit, offset int) ([]queries.OrderView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderViewColumns+` FROM orders
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()
	return collectOrderViews(rows)
}

func collectOrderViews(rows pgx.Rows) ([]queries.OrderView, error) {
	var views []queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order view", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order views", err)
	}
	return views, nil
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	var (
		view         queries.OrderView
		userName     pgtype.Text
		itemsJSON    []byte
		shippingJSON []byte
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.UserEmail, &userName, &itemsJSON, &shippingJSON,
		&view.Total, &view.Status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &view.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shippingJSON, &view.Shipping); err != nil {
		return nil, err
	}
	view.UserName = pgconv.StringPtrFromPgtype(userName)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
