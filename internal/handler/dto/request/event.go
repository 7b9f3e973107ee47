package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	PetID         uuid.UUID  `json:"pet_id" binding:"required"`
	Title         string     `json:"title" binding:"required,max=100"`
	EventDateTime time.Time  `json:"event_datetime" binding:"required"`
	EventType     string     `json:"event_type" binding:"required"`
	Description   *string    `json:"description,omitempty"`
	ServiceID     *uuid.UUID `json:"service_id,omitempty"`
	ProductID     *uuid.UUID `json:"product_id,omitempty"`
}
