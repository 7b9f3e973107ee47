//go:build unit

package queries_test

import (
	"context"
	"testing"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/usecase/queries"
	queriesmock "petcare-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockOrderReadStore
	queries   queries.OrderQueries
}

func (s *OrderQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockOrderReadStore(s.mockCtrl)
	s.queries = queries.NewOrderQueries(s.mockStore)
}

func (s *OrderQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderQueriesSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}

func (s *OrderQueriesTestSuite) TestGetByIDForOwner() {
	ctx := context.Background()
	orderID := uuid.New()
	view := &queries.OrderView{ID: orderID, UserEmail: "owner@example.com"}

	s.Run("success: owner reads their order", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), orderID).Return(view, nil)

		got, err := s.queries.GetByIDForOwner(ctx, orderID, "owner@example.com")
		s.Require().NoError(err)
		s.Equal(orderID, got.ID)
	})

	s.Run("success: email comparison ignores case", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), orderID).Return(view, nil)

		_, err := s.queries.GetByIDForOwner(ctx, orderID, "OWNER@Example.COM")
		s.NoError(err)
	})

	s.Run("error: someone else's order is Forbidden, proving it exists", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), orderID).Return(view, nil)

		_, err := s.queries.GetByIDForOwner(ctx, orderID, "intruder@example.com")
		s.ErrorIs(err, queries.ErrOrderForbidden)
	})

	s.Run("error: unknown order id is NotFound", func() {
		missing := uuid.New()
		s.mockStore.EXPECT().FindByID(gomock.Any(), missing).
			Return(nil, infra.NewRepoErr("order not found", infra.KindNotFound))

		_, err := s.queries.GetByIDForOwner(ctx, missing, "owner@example.com")
		s.ErrorIs(err, queries.ErrOrderNotFound)
	})
}

func (s *OrderQueriesTestSuite) TestListAll() {
	ctx := context.Background()

	s.Run("passes sane pagination through unchanged", func() {
		s.mockStore.EXPECT().ListAll(gomock.Any(), 20, 40).Return(nil, nil)

		_, err := s.queries.ListAll(ctx, 20, 40)
		s.NoError(err)
	})

	s.Run("clamps zero and oversized limits to the default page size", func() {
		s.mockStore.EXPECT().ListAll(gomock.Any(), 50, 0).Return(nil, nil).Times(2)

		_, err := s.queries.ListAll(ctx, 0, 0)
		s.NoError(err)
		_, err = s.queries.ListAll(ctx, 500, 0)
		s.NoError(err)
	})

	s.Run("negative offsets reset to zero", func() {
		s.mockStore.EXPECT().ListAll(gomock.Any(), 10, 0).Return(nil, nil)

		_, err := s.queries.ListAll(ctx, 10, -5)
		s.NoError(err)
	})
}
