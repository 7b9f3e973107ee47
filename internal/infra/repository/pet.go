package repository

import (
	"context"

	"petcare-backend/internal/domain/pet"
	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PetRepository struct {
	db db.Querier
}

func NewPetRepository(q db.Querier) *PetRepository {
	return &PetRepository{db: q}
}

func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO pets (id, owner_email, owner_name, name, species, breed, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())`,
		p.ID(), p.OwnerEmail(), p.OwnerName(), p.Name(), p.Species(), pgconv.StringPtrToPgtype(p.Breed()))
	if err != nil {
		return infra.WrapRepoErr("failed to insert pet", err)
	}
	return nil
}

func (r *PetRepository) FindByID(ctx context.Context, id uuid.UUID) (*pet.Pet, error) {
	var (
		petID      uuid.UUID
		ownerEmail string
		ownerName  string
		name       string
		species    string
		breed      pgtype.Text
		createdAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, owner_email, owner_name, name, species, breed, created_at FROM pets WHERE id = $1`, id).
		Scan(&petID, &ownerEmail, &ownerName, &name, &species, &breed, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pet", err)
	}

	return pet.ReconstructPet(
		petID, ownerEmail, ownerName, name, species,
		pgconv.StringPtrFromPgtype(breed),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
