package request

import (
	"time"

	"github.com/google/uuid"
)

type UsedProductRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

type UsedServiceRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
}

type CreateHealthRecordRequest struct {
	PetID        uuid.UUID            `json:"pet_id" binding:"required"`
	RecordType   string               `json:"record_type" binding:"required"`
	Date         time.Time            `json:"date" binding:"required"`
	Description  string               `json:"description" binding:"max=200"`
	Notes        *string              `json:"notes,omitempty"`
	NextDueDate  *time.Time           `json:"next_due_date,omitempty"`
	WeightKg     *float64             `json:"weight_kg,omitempty"`
	UsedProducts []UsedProductRequest `json:"used_products,omitempty"`
	UsedServices []UsedServiceRequest `json:"used_services,omitempty"`
}

type UpdateHealthRecordRequest struct {
	Description *string    `json:"description,omitempty" binding:"omitempty,max=200"`
	Notes       *string    `json:"notes,omitempty"`
	NextDueDate *time.Time `json:"next_due_date,omitempty"`
	WeightKg    *float64   `json:"weight_kg,omitempty"`
}
