package queries

import (
	"context"
	"strings"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound  = errs.New("order not found")
	ErrOrderForbidden = errs.New("order access denied")
)

type OrderQueries interface {
	// GetByIDSystem bypasses ownership; used for read-after-write and admin.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error)
	// GetByIDForOwner applies the portal rules: unknown ids are NotFound,
	// ids owned by someone else are Forbidden.
	GetByIDForOwner(ctx context.Context, id uuid.UUID, callerEmail string) (*OrderView, error)
	ListByOwner(ctx context.Context, callerEmail string) ([]OrderView, error)
	ListAll(ctx context.Context, limit, offset int) ([]OrderView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByEmail(ctx context.Context, email string) ([]OrderView, error)
	ListAll(ctx context.Context, limit, offset int) ([]OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{
		readStore: readStore,
	}
}

func (q *orderQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByIDForOwner(ctx context.Context, id uuid.UUID, callerEmail string) (*OrderView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(view.UserEmail, callerEmail) {
		return nil, ErrOrderForbidden
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByOwner(ctx context.Context, callerEmail string) ([]OrderView, error) {
	return q.readStore.ListByEmail(ctx, callerEmail)
}

func (q *orderQueriesImpl) ListAll(ctx context.Context, limit, offset int) ([]OrderView, error) {
	return q.readStore.ListAll(ctx, clampPage(limit), clampOffset(offset))
}
