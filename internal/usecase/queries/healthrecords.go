package queries

import (
	"context"
	"strings"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errs.New("health record not found")

type HealthRecordQueries interface {
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*HealthRecordView, error)
	// ListByPetForOwner applies the pet-ownership rule: a non-owner sees
	// NotFound, never Forbidden.
	ListByPetForOwner(ctx context.Context, petID uuid.UUID, callerEmail string) ([]HealthRecordView, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]HealthRecordView, error)
}

type HealthRecordReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HealthRecordView, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]HealthRecordView, error)
}

type healthRecordQueriesImpl struct {
	readStore HealthRecordReadStore
	pets      PetReadStore
}

func NewHealthRecordQueries(readStore HealthRecordReadStore, pets PetReadStore) HealthRecordQueries {
	return &healthRecordQueriesImpl{
		readStore: readStore,
		pets:      pets,
	}
}

func (q *healthRecordQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*HealthRecordView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *healthRecordQueriesImpl) ListByPetForOwner(ctx context.Context, petID uuid.UUID, callerEmail string) ([]HealthRecordView, error) {
	petView, err := q.pets.FindByID(ctx, petID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	if !strings.EqualFold(petView.OwnerEmail, callerEmail) {
		return nil, ErrPetNotFound
	}
	return q.readStore.ListByPet(ctx, petID)
}

func (q *healthRecordQueriesImpl) ListByPet(ctx context.Context, petID uuid.UUID) ([]HealthRecordView, error) {
	return q.readStore.ListByPet(ctx, petID)
}
