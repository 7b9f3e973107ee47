package commands

import (
	"context"
	"log/slog"
	"strings"

	"petcare-backend/internal/domain/order"
	reqdto "petcare-backend/internal/handler/dto/request"
	"petcare-backend/internal/infra"
	"petcare-backend/internal/pkg/errs"
	"petcare-backend/internal/usecase/queries"
	"petcare-backend/internal/usecase/stock"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound           = errs.New("order not found")
	ErrOrderForbidden          = errs.New("order does not belong to caller")
	ErrCancellationNotAllowed  = errs.New("order can no longer be cancelled, please contact support")
	ErrInvalidOrderStatus      = errs.New("invalid order status")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// CancelOrderResult reports the restock outcome alongside the cancellation.
// AlreadyCancelled marks the idempotent admin replay: nothing was restocked.
type CancelOrderResult struct {
	OrderID          uuid.UUID
	AlreadyCancelled bool
	RestockedCount   int
	MissingProducts  []uuid.UUID
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, ownerEmail string, ownerName *string, req reqdto.CreateOrderRequest) (*queries.OrderView, error)
	CancelOrder(ctx context.Context, callerEmail string, orderID uuid.UUID) (*CancelOrderResult, error)
	AdminCancelOrder(ctx context.Context, orderID uuid.UUID) (*CancelOrderResult, error)
	AdminUpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error
}

type orderCommandsImpl struct {
	orders       OrderRepository
	products     ProductReader
	engine       StockReserver
	orderQueries queries.OrderQueries
	logger       *slog.Logger
}

func NewOrderCommands(
	orders OrderRepository,
	products ProductReader,
	engine StockReserver,
	orderQueries queries.OrderQueries,
	logger *slog.Logger,
) OrderCommands {
	return &orderCommandsImpl{
		orders:       orders,
		products:     products,
		engine:       engine,
		orderQueries: orderQueries,
		logger:       logger,
	}
}

func (u *orderCommandsImpl) CreateOrder(
	ctx context.Context,
	ownerEmail string,
	ownerName *string,
	req reqdto.CreateOrderRequest,
) (*queries.OrderView, error) {
	specs := make([]order.ItemSpec, 0, len(req.Items))
	demands := make([]stock.Demand, 0, len(req.Items))
	for _, item := range req.Items {
		snap, err := u.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, stock.ErrProductNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		specs = append(specs, order.ItemSpec{
			ProductID: snap.ID,
			Name:      snap.Name,
			UnitPrice: snap.Price,
			Quantity:  item.Quantity,
		})
		demands = append(demands, stock.Demand{ProductID: snap.ID, Quantity: item.Quantity})
	}

	entity, err := order.NewOrder(ownerEmail, ownerName, specs, req.Shipping.ToDomain())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.engine.Reserve(ctx, demands); err != nil {
		return nil, err
	}

	if err := u.orders.Create(ctx, entity); err != nil {
		// The one uncompensated failure mode: stock is already decremented
		// and the order never existed. Not retried, reconciled manually.
		u.logger.Error("CRITICAL: order persistence failed after stock reservation, stock left decremented",
			"order_id", entity.ID(),
			"user_email", entity.UserEmail(),
			"error", err.Error())
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.orderQueries.GetByIDSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *orderCommandsImpl) CancelOrder(ctx context.Context, callerEmail string, orderID uuid.UUID) (*CancelOrderResult, error) {
	entity, err := u.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(entity.UserEmail(), callerEmail) {
		return nil, ErrOrderForbidden
	}
	if !entity.CanSelfCancel() {
		return nil, ErrCancellationNotAllowed
	}

	return u.cancel(ctx, entity)
}

// AdminCancelOrder cancels from any non-cancelled status. Cancelling an
// already-cancelled order succeeds without touching stock again.
func (u *orderCommandsImpl) AdminCancelOrder(ctx context.Context, orderID uuid.UUID) (*CancelOrderResult, error) {
	entity, err := u.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if entity.IsCancelled() {
		return &CancelOrderResult{OrderID: entity.ID(), AlreadyCancelled: true}, nil
	}

	return u.cancel(ctx, entity)
}

func (u *orderCommandsImpl) AdminUpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	next := order.Status(strings.ToLower(status))
	if !next.IsValid() {
		return ErrInvalidOrderStatus
	}

	if _, err := u.findOrder(ctx, orderID); err != nil {
		return err
	}

	// Status edits never restock; only the cancel paths do.
	if err := u.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *orderCommandsImpl) cancel(ctx context.Context, entity *order.Order) (*CancelOrderResult, error) {
	demands := make([]stock.Demand, 0, len(entity.Items()))
	for _, item := range entity.Items() {
		demands = append(demands, stock.Demand{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	// Restock is best-effort per item and never blocks the cancellation.
	released := u.engine.Release(ctx, demands)

	if err := u.orders.UpdateStatus(ctx, entity.ID(), order.StatusCancelled); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CancelOrderResult{
		OrderID:         entity.ID(),
		RestockedCount:  released.Restocked,
		MissingProducts: released.MissingProducts,
	}, nil
}

func (u *orderCommandsImpl) findOrder(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	entity, err := u.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}
