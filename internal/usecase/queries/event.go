package queries

import (
	"context"

	"booth-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
}

type eventQueriesImpl struct {
	reads shared.Reads
}

func NewEventQueries(uow shared.UnitOfWork) EventQueries {
	return &eventQueriesImpl{reads: uow.Reads()}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	ev, err := q.reads.EventByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEventNotFound, "event %s", id)
	}
	booths, err := q.reads.BoothsByEventID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newEventView(ev, booths), nil
}
