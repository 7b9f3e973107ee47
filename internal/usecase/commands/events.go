package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"petcare-backend/internal/domain/schedule"
	reqdto "petcare-backend/internal/handler/dto/request"
	"petcare-backend/internal/infra"
	"petcare-backend/internal/pkg/clock"
	"petcare-backend/internal/pkg/errs"
	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound    = errs.New("event not found")
	ErrEventInPast      = errs.New("cannot cancel past events")
	ErrEventTooSoon     = errs.New("event is too soon to cancel, please contact support")
	ErrInvalidEventData = errs.New("invalid event data")
)

type EventCommands interface {
	CreateEvent(ctx context.Context, callerEmail string, req reqdto.CreateEventRequest) (*queries.EventView, error)
	CancelEvent(ctx context.Context, callerEmail string, eventID uuid.UUID) error
}

type eventCommandsImpl struct {
	events       EventRepository
	pets         PetRepository
	eventQueries queries.EventQueries
	clock        clock.Clock
	leadTime     time.Duration
}

func NewEventCommands(
	events EventRepository,
	pets PetRepository,
	eventQueries queries.EventQueries,
	clk clock.Clock,
	leadTime time.Duration,
) EventCommands {
	return &eventCommandsImpl{
		events:       events,
		pets:         pets,
		eventQueries: eventQueries,
		clock:        clk,
		leadTime:     leadTime,
	}
}

func (u *eventCommandsImpl) CreateEvent(ctx context.Context, callerEmail string, req reqdto.CreateEventRequest) (*queries.EventView, error) {
	// Non-owners get the same answer as a missing pet.
	if err := u.checkPetOwnership(ctx, req.PetID, callerEmail); err != nil {
		return nil, err
	}

	entity, err := schedule.NewScheduledEvent(
		req.PetID,
		req.Title,
		req.EventDateTime,
		schedule.EventType(req.EventType),
		req.Description,
		req.ServiceID,
		req.ProductID,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEventData)
	}

	if err := u.events.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := u.eventQueries.GetByIDSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// CancelEvent hard-deletes the booking when the lead-time policy allows.
// Ownership is checked before the time rule so a non-owner learns nothing
// about the event, not even that it exists.
func (u *eventCommandsImpl) CancelEvent(ctx context.Context, callerEmail string, eventID uuid.UUID) error {
	entity, err := u.events.FindByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.checkPetOwnership(ctx, entity.PetID(), callerEmail); err != nil {
		return err
	}

	if err := schedule.CanCancel(entity.EventDateTime(), u.clock.Now(), u.leadTime); err != nil {
		if errors.Is(err, schedule.ErrPastEvent) {
			return errs.Mark(err, ErrEventInPast)
		}
		return errs.Mark(err, ErrEventTooSoon)
	}

	// Bookings hold no inventory, so deletion is the whole cancellation.
	if err := u.events.Delete(ctx, eventID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *eventCommandsImpl) checkPetOwnership(ctx context.Context, petID uuid.UUID, callerEmail string) error {
	petEntity, err := u.pets.FindByID(ctx, petID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrEventNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !strings.EqualFold(petEntity.OwnerEmail(), callerEmail) {
		return ErrEventNotFound
	}
	return nil
}
