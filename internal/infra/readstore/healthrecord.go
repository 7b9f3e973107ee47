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

type HealthRecordReadStore struct {
	db db.Querier
}

func NewHealthRecordReadStore(q db.Querier) *HealthRecordReadStore {
	return &HealthRecordReadStore{db: q}
}

const healthRecordViewColumns = `id, pet_id, record_type, date, description, notes, next_due_date,
	weight_kg, used_products, used_services, created_at`

func (r *HealthRecordReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HealthRecordView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+healthRecordViewColumns+` FROM health_records WHERE id = $1`, id)
	view, err := scanHealthRecordView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("health record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get health record view", err)
	}
	return view, nil
}

func (r *HealthRecordReadStore) ListByPet(ctx context.Context, petID uuid.UUID) ([]queries.HealthRecordView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+healthRecordViewColumns+` FROM health_records
		 WHERE pet_id = $1
		 ORDER BY date DESC`, petID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list health records by pet", err)
	}
	defer rows.Close()

	var views []queries.HealthRecordView
	for rows.Next() {
		view, err := scanHealthRecordView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan health record view", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate health record views", err)
	}
	return views, nil
}

func scanHealthRecordView(row pgx.Row) (*queries.HealthRecordView, error) {
	var (
		view             queries.HealthRecordView
		date             pgtype.Timestamptz
		notes            pgtype.Text
		nextDueDate      pgtype.Timestamptz
		weightKg         pgtype.Float8
		usedProductsJSON []byte
		usedServicesJSON []byte
		createdAt        pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.PetID, &view.RecordType, &date, &view.Description,
		&notes, &nextDueDate, &weightKg, &usedProductsJSON, &usedServicesJSON, &createdAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(usedProductsJSON, &view.UsedProducts); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(usedServicesJSON, &view.UsedServices); err != nil {
		return nil, err
	}
	view.Date = pgconv.TimeFromPgtype(date)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.NextDueDate = pgconv.TimePtrFromPgtype(nextDueDate)
	view.WeightKg = pgconv.Float64PtrFromPgtype(weightKg)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
