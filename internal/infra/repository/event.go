package repository

import (
	"context"

	"petcare-backend/internal/domain/schedule"
	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventRepository struct {
	db db.Querier
}

func NewEventRepository(q db.Querier) *EventRepository {
	return &EventRepository{db: q}
}

func (r *EventRepository) Create(ctx context.Context, e *schedule.ScheduledEvent) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO scheduled_events
		 (id, pet_id, title, event_datetime, event_type, description, is_completed, reminder_sent, service_id, product_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())`,
		e.ID(), e.PetID(), e.Title(), e.EventDateTime(), string(e.EventType()),
		pgconv.StringPtrToPgtype(e.Description()), e.IsCompleted(), e.ReminderSent(),
		pgconv.UUIDPtrToPgtype(e.ServiceID()), pgconv.UUIDPtrToPgtype(e.ProductID()))
	if err != nil {
		return infra.WrapRepoErr("failed to insert scheduled event", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.ScheduledEvent, error) {
	var (
		eventID       uuid.UUID
		petID         uuid.UUID
		title         string
		eventDateTime pgtype.Timestamptz
		eventType     string
		description   pgtype.Text
		isCompleted   bool
		reminderSent  bool
		serviceID     pgtype.UUID
		productID     pgtype.UUID
		createdAt     pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, pet_id, title, event_datetime, event_type, description, is_completed, reminder_sent, service_id, product_id, created_at
		 FROM scheduled_events WHERE id = $1`, id).
		Scan(&eventID, &petID, &title, &eventDateTime, &eventType, &description,
			&isCompleted, &reminderSent, &serviceID, &productID, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("scheduled event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get scheduled event", err)
	}

	return schedule.ReconstructScheduledEvent(
		eventID, petID, title,
		pgconv.TimeFromPgtype(eventDateTime),
		schedule.EventType(eventType),
		pgconv.StringPtrFromPgtype(description),
		isCompleted, reminderSent,
		pgconv.UUIDPtrFromPgtype(serviceID),
		pgconv.UUIDPtrFromPgtype(productID),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

// Delete is the cancellation itself: bookings are removed outright, no
// soft-delete trail is kept.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM scheduled_events WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete scheduled event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("scheduled event not found", infra.KindNotFound)
	}
	return nil
}
