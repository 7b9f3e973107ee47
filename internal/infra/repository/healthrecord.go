package repository

import (
	"context"
	"encoding/json"

	"petcare-backend/internal/domain/healthrecord"
	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type usedProductRow struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

type usedServiceRow struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type HealthRecordRepository struct {
	db db.Querier
}

func NewHealthRecordRepository(q db.Querier) *HealthRecordRepository {
	return &HealthRecordRepository{db: q}
}

func (r *HealthRecordRepository) Create(ctx context.Context, rec *healthrecord.HealthRecord) error {
	usedProductsJSON, usedServicesJSON, err := marshalSnapshots(rec)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO health_records
		 (id, pet_id, record_type, date, description, notes, next_due_date, weight_kg, used_products, used_services, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())`,
		rec.ID(), rec.PetID(), string(rec.RecordType()), rec.Date(), rec.Description(),
		pgconv.StringPtrToPgtype(rec.Notes()), pgconv.TimePtrToPgtype(rec.NextDueDate()),
		pgconv.Float64PtrToPgtype(rec.WeightKg()), usedProductsJSON, usedServicesJSON)
	if err != nil {
		return infra.WrapRepoErr("failed to insert health record", err)
	}
	return nil
}

func (r *HealthRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*healthrecord.HealthRecord, error) {
	var (
		recordID         uuid.UUID
		petID            uuid.UUID
		recordType       string
		date             pgtype.Timestamptz
		description      string
		notes            pgtype.Text
		nextDueDate      pgtype.Timestamptz
		weightKg         pgtype.Float8
		usedProductsJSON []byte
		usedServicesJSON []byte
		createdAt        pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, pet_id, record_type, date, description, notes, next_due_date, weight_kg, used_products, used_services, created_at
		 FROM health_records WHERE id = $1`, id).
		Scan(&recordID, &petID, &recordType, &date, &description, &notes, &nextDueDate, &weightKg,
			&usedProductsJSON, &usedServicesJSON, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("health record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get health record", err)
	}

	var productRows []usedProductRow
	if err := json.Unmarshal(usedProductsJSON, &productRows); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal used products", err)
	}
	var serviceRows []usedServiceRow
	if err := json.Unmarshal(usedServicesJSON, &serviceRows); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal used services", err)
	}

	usedProducts := make([]healthrecord.UsedProduct, 0, len(productRows))
	for _, row := range productRows {
		usedProducts = append(usedProducts, healthrecord.UsedProduct(row))
	}
	usedServices := make([]healthrecord.UsedService, 0, len(serviceRows))
	for _, row := range serviceRows {
		usedServices = append(usedServices, healthrecord.UsedService(row))
	}

	return healthrecord.ReconstructHealthRecord(
		recordID, petID,
		healthrecord.RecordType(recordType),
		pgconv.TimeFromPgtype(date),
		description,
		pgconv.StringPtrFromPgtype(notes),
		pgconv.TimePtrFromPgtype(nextDueDate),
		pgconv.Float64PtrFromPgtype(weightKg),
		usedProducts,
		usedServices,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

// Update writes metadata fields only. The snapshot columns are deliberately
// absent from the statement: consumption is immutable once recorded.
func (r *HealthRecordRepository) Update(ctx context.Context, rec *healthrecord.HealthRecord) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE health_records
		 SET description = $2, notes = $3, next_due_date = $4, weight_kg = $5
		 WHERE id = $1`,
		rec.ID(), rec.Description(), pgconv.StringPtrToPgtype(rec.Notes()),
		pgconv.TimePtrToPgtype(rec.NextDueDate()), pgconv.Float64PtrToPgtype(rec.WeightKg()))
	if err != nil {
		return infra.WrapRepoErr("failed to update health record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("health record not found", infra.KindNotFound)
	}
	return nil
}

func (r *HealthRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM health_records WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete health record", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("health record not found", infra.KindNotFound)
	}
	return nil
}

func marshalSnapshots(rec *healthrecord.HealthRecord) ([]byte, []byte, error) {
	productRows := make([]usedProductRow, 0, len(rec.UsedProducts()))
	for _, up := range rec.UsedProducts() {
		productRows = append(productRows, usedProductRow(up))
	}
	usedProductsJSON, err := json.Marshal(productRows)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to marshal used products", err)
	}

	serviceRows := make([]usedServiceRow, 0, len(rec.UsedServices()))
	for _, us := range rec.UsedServices() {
		serviceRows = append(serviceRows, usedServiceRow(us))
	}
	usedServicesJSON, err := json.Marshal(serviceRows)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to marshal used services", err)
	}

	return usedProductsJSON, usedServicesJSON, nil
}
