package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("event title cannot be empty")
	ErrInvalidEventType = errors.New("invalid event type")
)

const MaxTitleLength = 100

type EventType string

const (
	TypeAppointment EventType = "appointment"
	TypeMedication  EventType = "medication"
	TypeFeeding     EventType = "feeding"
	TypeActivity    EventType = "activity"
)

func (t EventType) IsValid() bool {
	switch t {
	case TypeAppointment, TypeMedication, TypeFeeding, TypeActivity:
		return true
	default:
		return false
	}
}

// ScheduledEvent is a booking. Bookings hold no inventory; cancellation is a
// hard delete gated only by ownership and the lead-time policy.
type ScheduledEvent struct {
	id            uuid.UUID
	petID         uuid.UUID
	title         string
	eventDateTime time.Time
	eventType     EventType
	description   *string
	isCompleted   bool
	reminderSent  bool
	serviceID     *uuid.UUID
	productID     *uuid.UUID
	createdAt     time.Time
}

func NewScheduledEvent(
	petID uuid.UUID,
	title string,
	eventDateTime time.Time,
	eventType EventType,
	description *string,
	serviceID, productID *uuid.UUID,
) (*ScheduledEvent, error) {
	if title == "" || len(title) > MaxTitleLength {
		return nil, ErrEmptyTitle
	}
	if !eventType.IsValid() {
		return nil, ErrInvalidEventType
	}
	return &ScheduledEvent{
		id:            uuid.New(),
		petID:         petID,
		title:         title,
		eventDateTime: eventDateTime,
		eventType:     eventType,
		description:   description,
		serviceID:     serviceID,
		productID:     productID,
	}, nil
}

func ReconstructScheduledEvent(
	id, petID uuid.UUID,
	title string,
	eventDateTime time.Time,
	eventType EventType,
	description *string,
	isCompleted, reminderSent bool,
	serviceID, productID *uuid.UUID,
	createdAt time.Time,
) *ScheduledEvent {
	return &ScheduledEvent{
		id:            id,
		petID:         petID,
		title:         title,
		eventDateTime: eventDateTime,
		eventType:     eventType,
		description:   description,
		isCompleted:   isCompleted,
		reminderSent:  reminderSent,
		serviceID:     serviceID,
		productID:     productID,
		createdAt:     createdAt,
	}
}

func (e *ScheduledEvent) ID() uuid.UUID            { return e.id }
func (e *ScheduledEvent) PetID() uuid.UUID         { return e.petID }
func (e *ScheduledEvent) Title() string            { return e.title }
func (e *ScheduledEvent) EventDateTime() time.Time { return e.eventDateTime }
func (e *ScheduledEvent) EventType() EventType     { return e.eventType }
func (e *ScheduledEvent) Description() *string     { return e.description }
func (e *ScheduledEvent) IsCompleted() bool        { return e.isCompleted }
func (e *ScheduledEvent) ReminderSent() bool       { return e.reminderSent }
func (e *ScheduledEvent) ServiceID() *uuid.UUID    { return e.serviceID }
func (e *ScheduledEvent) ProductID() *uuid.UUID    { return e.productID }
func (e *ScheduledEvent) CreatedAt() time.Time     { return e.createdAt }
