//go:build unit

package stock_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/usecase/stock"
	stockmock "petcare-backend/tests/mock/stock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *stockmock.MockProductStore
	engine    *stock.Engine
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = stockmock.NewMockProductStore(s.mockCtrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.engine = stock.NewEngine(s.mockStore, logger)
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) TestReserve() {
	ctx := context.Background()
	idA := uuid.New()
	idB := uuid.New()
	idC := uuid.New()

	s.Run("success: decrements every demand in order", func() {
		gomock.InOrder(
			s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idA, 2).Return(nil),
			s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idB, 1).Return(nil),
		)

		err := s.engine.Reserve(ctx, []stock.Demand{
			{ProductID: idA, Quantity: 2},
			{ProductID: idB, Quantity: 1},
		})
		s.NoError(err)
	})

	s.Run("success: empty demand list is a no-op", func() {
		s.NoError(s.engine.Reserve(ctx, nil))
	})

	s.Run("error: non-positive quantity rejected before any store call", func() {
		err := s.engine.Reserve(ctx, []stock.Demand{
			{ProductID: idA, Quantity: 1},
			{ProductID: idB, Quantity: 0},
		})
		s.ErrorIs(err, stock.ErrInvalidQuantity)

		var failure *stock.ReservationFailure
		s.ErrorAs(err, &failure)
		s.Equal(idB, failure.ProductID)
	})

	s.Run("error: insufficient stock compensates applied demands in reverse order", func() {
		gomock.InOrder(
			s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idA, 2).Return(nil),
			s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idB, 3).Return(nil),
			s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idC, 5).
				Return(infra.NewRepoErr("stock too low", infra.KindInsufficientStock)),
			s.mockStore.EXPECT().IncrementStock(gomock.Any(), idB, 3).Return(nil),
			s.mockStore.EXPECT().IncrementStock(gomock.Any(), idA, 2).Return(nil),
		)

		err := s.engine.Reserve(ctx, []stock.Demand{
			{ProductID: idA, Quantity: 2},
			{ProductID: idB, Quantity: 3},
			{ProductID: idC, Quantity: 5},
		})
		s.ErrorIs(err, stock.ErrInsufficientStock)

		var failure *stock.ReservationFailure
		s.ErrorAs(err, &failure)
		s.Equal(idC, failure.ProductID)
	})

	s.Run("error: unknown product maps to ErrProductNotFound", func() {
		s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idA, 1).
			Return(infra.NewRepoErr("product not found", infra.KindNotFound))

		err := s.engine.Reserve(ctx, []stock.Demand{{ProductID: idA, Quantity: 1}})
		s.ErrorIs(err, stock.ErrProductNotFound)
	})

	s.Run("error: first demand fails, nothing to compensate", func() {
		s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idA, 4).
			Return(infra.NewRepoErr("stock too low", infra.KindInsufficientStock))

		err := s.engine.Reserve(ctx, []stock.Demand{
			{ProductID: idA, Quantity: 4},
			{ProductID: idB, Quantity: 1},
		})
		s.ErrorIs(err, stock.ErrInsufficientStock)
	})

	s.Run("error: compensation failure does not mask the reservation error", func() {
		gomock.InOrder(
			s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idA, 2).Return(nil),
			s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idB, 1).
				Return(infra.NewRepoErr("stock too low", infra.KindInsufficientStock)),
			s.mockStore.EXPECT().IncrementStock(gomock.Any(), idA, 2).
				Return(errors.New("connection reset")),
		)

		err := s.engine.Reserve(ctx, []stock.Demand{
			{ProductID: idA, Quantity: 2},
			{ProductID: idB, Quantity: 1},
		})
		s.ErrorIs(err, stock.ErrInsufficientStock)
	})

	s.Run("error: db failure propagates without kind mapping", func() {
		dbErr := infra.WrapRepoErr("update stock", errors.New("connection reset"))
		s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idA, 1).Return(dbErr)

		err := s.engine.Reserve(ctx, []stock.Demand{{ProductID: idA, Quantity: 1}})
		s.Error(err)
		s.NotErrorIs(err, stock.ErrInsufficientStock)
		s.NotErrorIs(err, stock.ErrProductNotFound)
	})

	s.Run("duplicate product ids run as sequential demands", func() {
		gomock.InOrder(
			s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idA, 1).Return(nil),
			s.mockStore.EXPECT().TryDecrementStock(gomock.Any(), idA, 2).Return(nil),
		)

		err := s.engine.Reserve(ctx, []stock.Demand{
			{ProductID: idA, Quantity: 1},
			{ProductID: idA, Quantity: 2},
		})
		s.NoError(err)
	})
}

func (s *EngineTestSuite) TestRelease() {
	ctx := context.Background()
	idA := uuid.New()
	idB := uuid.New()
	idC := uuid.New()

	s.Run("success: credits all demands and counts units", func() {
		s.mockStore.EXPECT().IncrementStock(gomock.Any(), idA, 2).Return(nil)
		s.mockStore.EXPECT().IncrementStock(gomock.Any(), idB, 3).Return(nil)

		result := s.engine.Release(ctx, []stock.Demand{
			{ProductID: idA, Quantity: 2},
			{ProductID: idB, Quantity: 3},
		})
		s.Equal(5, result.Restocked)
		s.Empty(result.MissingProducts)
	})

	s.Run("missing product is reported, remaining demands still run", func() {
		gomock.InOrder(
			s.mockStore.EXPECT().IncrementStock(gomock.Any(), idA, 2).Return(nil),
			s.mockStore.EXPECT().IncrementStock(gomock.Any(), idB, 1).
				Return(infra.NewRepoErr("product not found", infra.KindNotFound)),
			s.mockStore.EXPECT().IncrementStock(gomock.Any(), idC, 4).Return(nil),
		)

		result := s.engine.Release(ctx, []stock.Demand{
			{ProductID: idA, Quantity: 2},
			{ProductID: idB, Quantity: 1},
			{ProductID: idC, Quantity: 4},
		})
		s.Equal(6, result.Restocked)
		s.Equal([]uuid.UUID{idB}, result.MissingProducts)
	})

	s.Run("db failure on one item does not abort the rest", func() {
		gomock.InOrder(
			s.mockStore.EXPECT().IncrementStock(gomock.Any(), idA, 2).
				Return(errors.New("connection reset")),
			s.mockStore.EXPECT().IncrementStock(gomock.Any(), idB, 1).Return(nil),
		)

		result := s.engine.Release(ctx, []stock.Demand{
			{ProductID: idA, Quantity: 2},
			{ProductID: idB, Quantity: 1},
		})
		s.Equal(1, result.Restocked)
		s.Empty(result.MissingProducts)
	})

	s.Run("non-positive quantities are skipped", func() {
		result := s.engine.Release(ctx, []stock.Demand{{ProductID: idA, Quantity: 0}})
		s.Equal(0, result.Restocked)
		s.Empty(result.MissingProducts)
	})
}
