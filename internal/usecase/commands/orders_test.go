//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"petcare-backend/internal/domain/order"
	reqdto "petcare-backend/internal/handler/dto/request"
	"petcare-backend/internal/infra"
	"petcare-backend/internal/usecase/commands"
	"petcare-backend/internal/usecase/queries"
	"petcare-backend/internal/usecase/stock"
	commandsmock "petcare-backend/tests/mock/commands"
	queriesmock "petcare-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockOrders  *commandsmock.MockOrderRepository
	mockReader  *commandsmock.MockProductReader
	mockEngine  *commandsmock.MockStockReserver
	mockQueries *queriesmock.MockOrderQueries
	commands    commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrders = commandsmock.NewMockOrderRepository(s.mockCtrl)
	s.mockReader = commandsmock.NewMockProductReader(s.mockCtrl)
	s.mockEngine = commandsmock.NewMockStockReserver(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.commands = commands.NewOrderCommands(s.mockOrders, s.mockReader, s.mockEngine, s.mockQueries, logger)
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

const ownerEmail = "owner@example.com"

func reconstructOrder(productID uuid.UUID, qty int, status order.Status) *order.Order {
	now := time.Now()
	return order.ReconstructOrder(
		uuid.New(),
		ownerEmail,
		nil,
		[]order.Item{{ProductID: productID, Name: "Flea Drops", UnitPrice: 5.0, Quantity: qty, Subtotal: 5.0 * float64(qty)}},
		order.ShippingInfo{Name: "Owner", Address: "1 Main St"},
		5.0*float64(qty),
		status,
		now, now,
	)
}

func (s *OrderCommandsTestSuite) TestCreateOrder() {
	ctx := context.Background()
	productID := uuid.New()
	req := reqdto.CreateOrderRequest{
		Items:    []reqdto.OrderItemRequest{{ProductID: productID, Quantity: 3}},
		Shipping: reqdto.ShippingInfoRequest{Name: "Owner", Address: "1 Main St"},
	}
	snap := &commands.ProductSnapshot{ID: productID, Name: "Flea Drops", Price: 5.0, StockQuantity: 10}

	s.Run("success: snapshots price, reserves stock, persists pending order", func() {
		s.mockReader.EXPECT().FindByID(gomock.Any(), productID).Return(snap, nil)
		s.mockEngine.EXPECT().Reserve(gomock.Any(), []stock.Demand{{ProductID: productID, Quantity: 3}}).Return(nil)
		var persisted *order.Order
		s.mockOrders.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *order.Order) error {
				persisted = o
				return nil
			})
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
				return &queries.OrderView{ID: id, UserEmail: ownerEmail, Total: 15.0, Status: "pending"}, nil
			})

		view, err := s.commands.CreateOrder(ctx, ownerEmail, nil, req)
		s.Require().NoError(err)
		s.Equal(15.0, view.Total)
		s.Require().NotNil(persisted)
		s.Equal(order.StatusPending, persisted.Status())
		s.Equal(15.0, persisted.Total())
		s.Equal(5.0, persisted.Items()[0].UnitPrice)
	})

	s.Run("error: unknown product surfaces before any reservation", func() {
		s.mockReader.EXPECT().FindByID(gomock.Any(), productID).
			Return(nil, infra.NewRepoErr("product not found", infra.KindNotFound))

		_, err := s.commands.CreateOrder(ctx, ownerEmail, nil, req)
		s.ErrorIs(err, stock.ErrProductNotFound)
	})

	s.Run("error: insufficient stock propagates from the engine", func() {
		s.mockReader.EXPECT().FindByID(gomock.Any(), productID).Return(snap, nil)
		s.mockEngine.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(&stock.ReservationFailure{ProductID: productID})

		_, err := s.commands.CreateOrder(ctx, ownerEmail, nil, req)
		var failure *stock.ReservationFailure
		s.ErrorAs(err, &failure)
		s.Equal(productID, failure.ProductID)
	})

	s.Run("error: zero quantity never reaches the engine", func() {
		badReq := reqdto.CreateOrderRequest{
			Items:    []reqdto.OrderItemRequest{{ProductID: productID, Quantity: 0}},
			Shipping: req.Shipping,
		}
		s.mockReader.EXPECT().FindByID(gomock.Any(), productID).Return(snap, nil)

		_, err := s.commands.CreateOrder(ctx, ownerEmail, nil, badReq)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("error: persistence failure after reservation is not compensated", func() {
		s.mockReader.EXPECT().FindByID(gomock.Any(), productID).Return(snap, nil)
		s.mockEngine.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil)
		s.mockOrders.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))
		// No Release expectation: stock stays decremented for manual reconciliation.

		_, err := s.commands.CreateOrder(ctx, ownerEmail, nil, req)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

func (s *OrderCommandsTestSuite) TestCancelOrder() {
	ctx := context.Background()
	productID := uuid.New()

	s.Run("success: restocks items and marks the order cancelled", func() {
		entity := reconstructOrder(productID, 3, order.StatusPending)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockEngine.EXPECT().Release(gomock.Any(), []stock.Demand{{ProductID: productID, Quantity: 3}}).
			Return(stock.ReleaseResult{Restocked: 3})
		s.mockOrders.EXPECT().UpdateStatus(gomock.Any(), entity.ID(), order.StatusCancelled).Return(nil)

		result, err := s.commands.CancelOrder(ctx, ownerEmail, entity.ID())
		s.Require().NoError(err)
		s.Equal(3, result.RestockedCount)
		s.False(result.AlreadyCancelled)
	})

	s.Run("success: ownership comparison ignores email case", func() {
		entity := reconstructOrder(productID, 1, order.StatusPending)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockEngine.EXPECT().Release(gomock.Any(), gomock.Any()).Return(stock.ReleaseResult{Restocked: 1})
		s.mockOrders.EXPECT().UpdateStatus(gomock.Any(), entity.ID(), order.StatusCancelled).Return(nil)

		_, err := s.commands.CancelOrder(ctx, "OWNER@Example.COM", entity.ID())
		s.NoError(err)
	})

	s.Run("error: unknown order id is NotFound", func() {
		orderID := uuid.New()
		s.mockOrders.EXPECT().FindByID(gomock.Any(), orderID).
			Return(nil, infra.NewRepoErr("order not found", infra.KindNotFound))

		_, err := s.commands.CancelOrder(ctx, ownerEmail, orderID)
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})

	s.Run("error: someone else's order is Forbidden, not NotFound", func() {
		entity := reconstructOrder(productID, 1, order.StatusPending)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.commands.CancelOrder(ctx, "intruder@example.com", entity.ID())
		s.ErrorIs(err, commands.ErrOrderForbidden)
	})

	s.Run("error: confirmed orders cannot be self-cancelled", func() {
		entity := reconstructOrder(productID, 1, order.StatusConfirmed)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		// No Release, no UpdateStatus: the rejection happens before any side effect.

		_, err := s.commands.CancelOrder(ctx, ownerEmail, entity.ID())
		s.ErrorIs(err, commands.ErrCancellationNotAllowed)
	})

	s.Run("error: shipped orders cannot be self-cancelled", func() {
		entity := reconstructOrder(productID, 1, order.StatusShipped)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.commands.CancelOrder(ctx, ownerEmail, entity.ID())
		s.ErrorIs(err, commands.ErrCancellationNotAllowed)
	})
}

func (s *OrderCommandsTestSuite) TestAdminCancelOrder() {
	ctx := context.Background()
	productID := uuid.New()

	s.Run("success: cancels a confirmed order with restock report", func() {
		entity := reconstructOrder(productID, 2, order.StatusConfirmed)
		missing := uuid.New()
		s.mockOrders.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockEngine.EXPECT().Release(gomock.Any(), gomock.Any()).
			Return(stock.ReleaseResult{Restocked: 2, MissingProducts: []uuid.UUID{missing}})
		s.mockOrders.EXPECT().UpdateStatus(gomock.Any(), entity.ID(), order.StatusCancelled).Return(nil)

		result, err := s.commands.AdminCancelOrder(ctx, entity.ID())
		s.Require().NoError(err)
		s.Equal(2, result.RestockedCount)
		s.Equal([]uuid.UUID{missing}, result.MissingProducts)
	})

	s.Run("success: already-cancelled order replays without restocking", func() {
		entity := reconstructOrder(productID, 2, order.StatusCancelled)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		// No Release, no UpdateStatus: idempotent success.

		result, err := s.commands.AdminCancelOrder(ctx, entity.ID())
		s.Require().NoError(err)
		s.True(result.AlreadyCancelled)
		s.Zero(result.RestockedCount)
	})
}

func (s *OrderCommandsTestSuite) TestAdminUpdateOrderStatus() {
	ctx := context.Background()
	productID := uuid.New()

	s.Run("success: lower-cases the incoming status and never restocks", func() {
		entity := reconstructOrder(productID, 2, order.StatusPending)
		s.mockOrders.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockOrders.EXPECT().UpdateStatus(gomock.Any(), entity.ID(), order.StatusShipped).Return(nil)

		s.NoError(s.commands.AdminUpdateOrderStatus(ctx, entity.ID(), "SHIPPED"))
	})

	s.Run("error: rejects values outside the status enum", func() {
		err := s.commands.AdminUpdateOrderStatus(ctx, uuid.New(), "returned")
		s.ErrorIs(err, commands.ErrInvalidOrderStatus)
	})
}
