package queries

import (
	"context"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEventNotFound = errs.New("event not found")

type EventQueries interface {
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListByOwner(ctx context.Context, callerEmail string) ([]EventView, error)
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListByOwnerEmail(ctx context.Context, email string) ([]EventView, error)
}

type eventQueriesImpl struct {
	readStore EventReadStore
}

func NewEventQueries(readStore EventReadStore) EventQueries {
	return &eventQueriesImpl{
		readStore: readStore,
	}
}

func (q *eventQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *eventQueriesImpl) ListByOwner(ctx context.Context, callerEmail string) ([]EventView, error) {
	return q.readStore.ListByOwnerEmail(ctx, callerEmail)
}
