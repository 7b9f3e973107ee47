package repository

import (
	"context"
	"encoding/json"

	"petcare-backend/internal/domain/order"
	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// orderItemRow is the jsonb shape of one item snapshot. Snapshots are stored
// denormalized on the order row so they survive catalog edits untouched.
type orderItemRow struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
}

type shippingRow struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone,omitempty"`
}

type OrderRepository struct {
	db db.Querier
}

func NewOrderRepository(q db.Querier) *OrderRepository {
	return &OrderRepository{db: q}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items := make([]orderItemRow, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItemRow(item))
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal order items", err)
	}
	shippingJSON, err := json.Marshal(shippingRow(o.Shipping()))
	if err != nil {
		return infra.WrapRepoErr("failed to marshal shipping info", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO orders (id, user_email, user_name, items, shipping_info, total, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
		o.ID(), o.UserEmail(), pgconv.StringPtrToPgtype(o.UserName()), itemsJSON, shippingJSON, o.Total(), o.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to insert order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var (
		orderID      uuid.UUID
		userEmail    string
		userName     pgtype.Text
		itemsJSON    []byte
		shippingJSON []byte
		total        float64
		status       string
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, user_email, user_name, items, shipping_info, total, status, created_at, updated_at
		 FROM orders WHERE id = $1`, id).
		Scan(&orderID, &userEmail, &userName, &itemsJSON, &shippingJSON, &total, &status, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}

	var itemRows []orderItemRow
	if err := json.Unmarshal(itemsJSON, &itemRows); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal order items", err)
	}
	var shipping shippingRow
	if err := json.Unmarshal(shippingJSON, &shipping); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal shipping info", err)
	}

	items := make([]order.Item, 0, len(itemRows))
	for _, row := range itemRows {
		items = append(items, order.Item(row))
	}

	return order.ReconstructOrder(
		orderID,
		userEmail,
		pgconv.StringPtrFromPgtype(userName),
		items,
		order.ShippingInfo(shipping),
		total,
		order.Status(status),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("order not found", infra.KindNotFound)
	}
	return nil
}
