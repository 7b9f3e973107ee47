package response

import (
	"time"

	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:            v.ID,
		Name:          v.Name,
		Price:         v.Price,
		StockQuantity: v.StockQuantity,
		Description:   v.Description,
		CreatedAt:     v.CreatedAt,
	}
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:          v.ID,
		Name:        v.Name,
		Price:       v.Price,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}
