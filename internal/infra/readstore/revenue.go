package readstore

import (
	"context"
	"encoding/json"
	"time"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"
	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RevenueReadStore struct {
	db db.Querier
}

func NewRevenueReadStore(q db.Querier) *RevenueReadStore {
	return &RevenueReadStore{db: q}
}

func (r *RevenueReadStore) HealthRecordSources(ctx context.Context, start, end *time.Time) ([]queries.RecordRevenueSource, error) {
	rows, err := r.db.Query(ctx,
		`SELECT date, used_products, used_services FROM health_records
		 WHERE ($1::timestamptz IS NULL OR date >= $1)
		   AND ($2::timestamptz IS NULL OR date <= $2)`, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query health record revenue sources", err)
	}
	defer rows.Close()

	var sources []queries.RecordRevenueSource
	for rows.Next() {
		var (
			src              queries.RecordRevenueSource
			date             pgtype.Timestamptz
			usedProductsJSON []byte
			usedServicesJSON []byte
		)
		if err := rows.Scan(&date, &usedProductsJSON, &usedServicesJSON); err != nil {
			return nil, infra.WrapRepoErr("failed to scan health record revenue source", err)
		}
		if err := json.Unmarshal(usedProductsJSON, &src.UsedProducts); err != nil {
			return nil, infra.WrapRepoErr("failed to decode used products", err)
		}
		if err := json.Unmarshal(usedServicesJSON, &src.UsedServices); err != nil {
			return nil, infra.WrapRepoErr("failed to decode used services", err)
		}
		src.Date = pgconv.TimeFromPgtype(date)
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate health record revenue sources", err)
	}
	return sources, nil
}

func (r *RevenueReadStore) NonCancelledOrderSources(ctx context.Context, start, end *time.Time) ([]queries.OrderRevenueSource, error) {
	rows, err := r.db.Query(ctx,
		`SELECT created_at, total, items FROM orders
		 WHERE status <> 'cancelled'
		   AND ($1::timestamptz IS NULL OR created_at >= $1)
		   AND ($2::timestamptz IS NULL OR created_at <= $2)`, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query order revenue sources", err)
	}
	defer rows.Close()

	var sources []queries.OrderRevenueSource
	for rows.Next() {
		var (
			src       queries.OrderRevenueSource
			createdAt pgtype.Timestamptz
			itemsJSON []byte
		)
		if err := rows.Scan(&createdAt, &src.Total, &itemsJSON); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order revenue source", err)
		}
		if err := json.Unmarshal(itemsJSON, &src.Items); err != nil {
			return nil, infra.WrapRepoErr("failed to decode order items", err)
		}
		src.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order revenue sources", err)
	}
	return sources, nil
}

func (r *RevenueReadStore) ProductNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query product names", err)
	}
	defer rows.Close()

	names := make(map[uuid.UUID]string, len(ids))
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product name", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product names", err)
	}
	return names, nil
}
