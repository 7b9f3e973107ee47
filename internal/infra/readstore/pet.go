package readstore

import (
	"context"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"
	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PetReadStore struct {
	db db.Querier
}

func NewPetReadStore(q db.Querier) *PetReadStore {
	return &PetReadStore{db: q}
}

func (r *PetReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PetView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, owner_email, owner_name, name, species, breed, created_at FROM pets WHERE id = $1`, id)
	view, err := scanPetView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pet view", err)
	}
	return view, nil
}

func (r *PetReadStore) ListByEmail(ctx context.Context, email string) ([]queries.PetView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, owner_email, owner_name, name, species, breed, created_at FROM pets
		 WHERE LOWER(owner_email) = LOWER($1)
		 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets by email", err)
	}
	defer rows.Close()

	var views []queries.PetView
	for rows.Next() {
		view, err := scanPetView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet view", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pet views", err)
	}
	return views, nil
}

func scanPetView(row pgx.Row) (*queries.PetView, error) {
	var (
		view      queries.PetView
		breed     pgtype.Text
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.OwnerEmail, &view.OwnerName, &view.Name, &view.Species, &breed, &createdAt)
	if err != nil {
		return nil, err
	}
	view.Breed = pgconv.StringPtrFromPgtype(breed)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
