package response

import (
	"time"

	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type UsedProductResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

type UsedServiceResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type HealthRecordResponse struct {
	ID           uuid.UUID             `json:"id"`
	PetID        uuid.UUID             `json:"pet_id"`
	RecordType   string                `json:"record_type"`
	Date         time.Time             `json:"date"`
	Description  string                `json:"description"`
	Notes        *string               `json:"notes,omitempty"`
	NextDueDate  *time.Time            `json:"next_due_date,omitempty"`
	WeightKg     *float64              `json:"weight_kg,omitempty"`
	UsedProducts []UsedProductResponse `json:"used_products"`
	UsedServices []UsedServiceResponse `json:"used_services"`
	CreatedAt    time.Time             `json:"created_at"`
}

func FromHealthRecordView(v *queries.HealthRecordView) *HealthRecordResponse {
	usedProducts := make([]UsedProductResponse, len(v.UsedProducts))
	for i, up := range v.UsedProducts {
		usedProducts[i] = UsedProductResponse(up)
	}
	usedServices := make([]UsedServiceResponse, len(v.UsedServices))
	for i, us := range v.UsedServices {
		usedServices[i] = UsedServiceResponse(us)
	}
	return &HealthRecordResponse{
		ID:           v.ID,
		PetID:        v.PetID,
		RecordType:   v.RecordType,
		Date:         v.Date,
		Description:  v.Description,
		Notes:        v.Notes,
		NextDueDate:  v.NextDueDate,
		WeightKg:     v.WeightKg,
		UsedProducts: usedProducts,
		UsedServices: usedServices,
		CreatedAt:    v.CreatedAt,
	}
}
