package queries

import (
	"context"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrServiceNotFound = errs.New("service not found")
)

// CatalogQueries serves the portal product/service reads used by checkout.
type CatalogQueries interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListProducts(ctx context.Context, limit, offset int) ([]ProductView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListServices(ctx context.Context, limit, offset int) ([]ServiceView, error)
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, limit, offset int) ([]ProductView, error)
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, limit, offset int) ([]ServiceView, error)
}

type catalogQueriesImpl struct {
	products ProductReadStore
	services ServiceReadStore
}

func NewCatalogQueries(products ProductReadStore, services ServiceReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		products: products,
		services: services,
	}
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, limit, offset int) ([]ProductView, error) {
	return q.products.List(ctx, clampPage(limit), clampOffset(offset))
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.services.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, limit, offset int) ([]ServiceView, error) {
	return q.services.List(ctx, clampPage(limit), clampOffset(offset))
}

func clampPage(limit int) int {
	if limit <= 0 || limit > 100 {
		return 50
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
