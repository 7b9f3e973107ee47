package response

import (
	"time"

	"petcare-backend/internal/usecase/commands"
	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
}

type ShippingInfoResponse struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone,omitempty"`
}

type OrderResponse struct {
	ID        uuid.UUID            `json:"id"`
	UserEmail string               `json:"user_email"`
	UserName  *string              `json:"user_name,omitempty"`
	Items     []OrderItemResponse  `json:"items"`
	Shipping  ShippingInfoResponse `json:"shipping_info"`
	Total     float64              `json:"total"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type CancelOrderResponse struct {
	OrderID          uuid.UUID   `json:"order_id"`
	Status           string      `json:"status"`
	AlreadyCancelled bool        `json:"already_cancelled"`
	RestockedCount   int         `json:"restocked_count"`
	MissingProducts  []uuid.UUID `json:"missing_products,omitempty"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(v.Items))
	for i, item := range v.Items {
		items[i] = OrderItemResponse(item)
	}
	return &OrderResponse{
		ID:        v.ID,
		UserEmail: v.UserEmail,
		UserName:  v.UserName,
		Items:     items,
		Shipping:  ShippingInfoResponse(v.Shipping),
		Total:     v.Total,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromCancelOrderResult(r *commands.CancelOrderResult) *CancelOrderResponse {
	return &CancelOrderResponse{
		OrderID:          r.OrderID,
		Status:           "cancelled",
		AlreadyCancelled: r.AlreadyCancelled,
		RestockedCount:   r.RestockedCount,
		MissingProducts:  r.MissingProducts,
	}
}
