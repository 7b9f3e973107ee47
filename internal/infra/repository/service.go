package repository

import (
	"context"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"
	"petcare-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

// ServiceRepository reads the service catalog for snapshotting onto health
// records. Name and price are copied at visit time like product snapshots.
type ServiceRepository struct {
	db db.Querier
}

func NewServiceRepository(q db.Querier) *ServiceRepository {
	return &ServiceRepository{db: q}
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ServiceSnapshot, error) {
	var snap commands.ServiceSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, name, price FROM services WHERE id = $1`, id).
		Scan(&snap.ID, &snap.Name, &snap.Price)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service", err)
	}
	return &snap, nil
}
