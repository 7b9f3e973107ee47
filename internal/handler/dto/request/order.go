package request

import (
	"petcare-backend/internal/domain/order"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

type ShippingInfoRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address string  `json:"address" binding:"required"`
	Phone   *string `json:"phone,omitempty"`
}

type CreateOrderRequest struct {
	Items    []OrderItemRequest  `json:"items" binding:"required,min=1,dive"`
	Shipping ShippingInfoRequest `json:"shipping_info" binding:"required"`
}

func (r ShippingInfoRequest) ToDomain() order.ShippingInfo {
	return order.ShippingInfo{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
