package repository

import (
	"context"

	"booth-reservation/internal/domain/event"
	"booth-reservation/internal/infra"
	"booth-reservation/internal/infra/repository/converter"
	sqlc "booth-reservation/internal/infra/sqlc/generated"
	"booth-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EventQueries interface {
	CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) error
	GetEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
}

type EventRepository struct {
	queries EventQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	if err := r.queries.CreateEvent(ctx, r.db, converter.EventToInfra(e)); err != nil {
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}
	ev, err := converter.EventToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert event", err, infra.KindDBFailure)
	}
	return ev, nil
}
