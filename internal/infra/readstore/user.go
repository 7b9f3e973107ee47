package readstore

import (
	"context"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"
	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.Querier
}

func NewUserReadStore(q db.Querier) *UserReadStore {
	return &UserReadStore{db: q}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, role FROM users WHERE id = $1`, id).
		Scan(&view.ID, &view.Email, &view.Name, &view.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user view", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view           queries.AuthorizedUserView
		hashedPassword string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, role, password_hash FROM users WHERE LOWER(email) = LOWER($1)`, email).
		Scan(&view.ID, &view.Email, &view.Name, &view.Role, &hashedPassword)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to get user by email", err)
	}
	return &view, hashedPassword, nil
}
