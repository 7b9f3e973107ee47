package queries

import (
	"context"
	"strings"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPetNotFound = errs.New("pet not found")

type PetQueries interface {
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*PetView, error)
	// GetByIDForOwner hides pets owned by someone else behind NotFound.
	GetByIDForOwner(ctx context.Context, id uuid.UUID, callerEmail string) (*PetView, error)
	ListByOwner(ctx context.Context, callerEmail string) ([]PetView, error)
}

type PetReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PetView, error)
	ListByEmail(ctx context.Context, email string) ([]PetView, error)
}

type petQueriesImpl struct {
	readStore PetReadStore
}

func NewPetQueries(readStore PetReadStore) PetQueries {
	return &petQueriesImpl{
		readStore: readStore,
	}
}

func (q *petQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*PetView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *petQueriesImpl) GetByIDForOwner(ctx context.Context, id uuid.UUID, callerEmail string) (*PetView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(view.OwnerEmail, callerEmail) {
		return nil, ErrPetNotFound
	}
	return view, nil
}

func (q *petQueriesImpl) ListByOwner(ctx context.Context, callerEmail string) ([]PetView, error) {
	return q.readStore.ListByEmail(ctx, callerEmail)
}
