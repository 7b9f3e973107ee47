package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems         = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	ErrInvalidPrice    = errors.New("item unit price must be positive")
	ErrEmptyEmail      = errors.New("order must carry the owner email")
)

// Item is a price/name snapshot taken at order-creation time. It is
// intentionally decoupled from the live Product so historical orders and
// revenue reports stay immutable when catalog prices change later.
type Item struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
	Subtotal  float64
}

type ShippingInfo struct {
	Name    string
	Address string
	Phone   *string
}

// ItemSpec is the caller-facing shape before snapshotting: unit price and
// name come from the catalog lookup, quantity from the request.
type ItemSpec struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
}

type Order struct {
	id        uuid.UUID
	userEmail string
	userName  *string
	items     []Item
	shipping  ShippingInfo
	total     float64
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewOrder snapshots the given specs and computes subtotal/total as the
// floating-point sum of subtotals, so that total == Σ item.Subtotal and
// item.Subtotal == item.UnitPrice * item.Quantity hold exactly at creation.
func NewOrder(userEmail string, userName *string, specs []ItemSpec, shipping ShippingInfo) (*Order, error) {
	if userEmail == "" {
		return nil, ErrEmptyEmail
	}
	if len(specs) == 0 {
		return nil, ErrNoItems
	}

	items := make([]Item, 0, len(specs))
	total := 0.0
	for _, spec := range specs {
		if spec.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if spec.UnitPrice <= 0 {
			return nil, ErrInvalidPrice
		}
		subtotal := spec.UnitPrice * float64(spec.Quantity)
		total += subtotal
		items = append(items, Item{
			ProductID: spec.ProductID,
			Name:      spec.Name,
			UnitPrice: spec.UnitPrice,
			Quantity:  spec.Quantity,
			Subtotal:  subtotal,
		})
	}

	return &Order{
		id:        uuid.New(),
		userEmail: userEmail,
		userName:  userName,
		items:     items,
		shipping:  shipping,
		total:     total,
		status:    StatusPending,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	userEmail string,
	userName *string,
	items []Item,
	shipping ShippingInfo,
	total float64,
	status Status,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:        id,
		userEmail: userEmail,
		userName:  userName,
		items:     items,
		shipping:  shipping,
		total:     total,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) UserEmail() string      { return o.userEmail }
func (o *Order) UserName() *string      { return o.userName }
func (o *Order) Items() []Item          { return o.items }
func (o *Order) Shipping() ShippingInfo { return o.shipping }
func (o *Order) Total() float64         { return o.total }
func (o *Order) Status() Status         { return o.status }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }

// CanSelfCancel gates the portal path: only pending orders may be cancelled
// by the customer; confirmed/shipped orders need support intervention.
func (o *Order) CanSelfCancel() bool {
	return o.status == StatusPending
}

func (o *Order) IsCancelled() bool {
	return o.status == StatusCancelled
}
