package readstore

import (
	"context"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/infra/db"
	"petcare-backend/internal/pkg/pgconv"
	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventReadStore struct {
	db db.Querier
}

func NewEventReadStore(q db.Querier) *EventReadStore {
	return &EventReadStore{db: q}
}

const eventViewColumns = `e.id, e.pet_id, e.title, e.event_datetime, e.event_type, e.description,
	e.is_completed, e.reminder_sent, e.service_id, e.product_id, e.created_at`

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+eventViewColumns+` FROM scheduled_events e WHERE e.id = $1`, id)
	view, err := scanEventView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("scheduled event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event view", err)
	}
	return view, nil
}

func (r *EventReadStore) ListByOwnerEmail(ctx context.Context, email string) ([]queries.EventView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventViewColumns+`
		 FROM scheduled_events e
		 JOIN pets p ON p.id = e.pet_id
		 WHERE LOWER(p.owner_email) = LOWER($1)
		 ORDER BY e.event_datetime`, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events by owner", err)
	}
	defer rows.Close()

	var views []queries.EventView
	for rows.Next() {
		view, err := scanEventView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event view", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event views", err)
	}
	return views, nil
}

func scanEventView(row pgx.Row) (*queries.EventView, error) {
	var (
		view          queries.EventView
		eventDateTime pgtype.Timestamptz
		description   pgtype.Text
		serviceID     pgtype.UUID
		productID     pgtype.UUID
		createdAt     pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.PetID, &view.Title, &eventDateTime, &view.EventType,
		&description, &view.IsCompleted, &view.ReminderSent, &serviceID, &productID, &createdAt)
	if err != nil {
		return nil, err
	}
	view.EventDateTime = pgconv.TimeFromPgtype(eventDateTime)
	view.Description = pgconv.StringPtrFromPgtype(description)
	view.ServiceID = pgconv.UUIDPtrFromPgtype(serviceID)
	view.ProductID = pgconv.UUIDPtrFromPgtype(productID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
