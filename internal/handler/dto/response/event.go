package response

import (
	"time"

	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID            uuid.UUID  `json:"id"`
	PetID         uuid.UUID  `json:"pet_id"`
	Title         string     `json:"title"`
	EventDateTime time.Time  `json:"event_datetime"`
	EventType     string     `json:"event_type"`
	Description   *string    `json:"description,omitempty"`
	IsCompleted   bool       `json:"is_completed"`
	ReminderSent  bool       `json:"reminder_sent"`
	ServiceID     *uuid.UUID `json:"service_id,omitempty"`
	ProductID     *uuid.UUID `json:"product_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	return &EventResponse{
		ID:            v.ID,
		PetID:         v.PetID,
		Title:         v.Title,
		EventDateTime: v.EventDateTime,
		EventType:     v.EventType,
		Description:   v.Description,
		IsCompleted:   v.IsCompleted,
		ReminderSent:  v.ReminderSent,
		ServiceID:     v.ServiceID,
		ProductID:     v.ProductID,
		CreatedAt:     v.CreatedAt,
	}
}
