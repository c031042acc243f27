package queries

import (
	"context"

	"booth-reservation/internal/pkg/errs"
	"booth-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	reads shared.Reads
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{reads: uow.Reads()}
}

// GetByID hides reservations of other renters behind not found. Organizers and admins see all of them.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	r, err := q.reads.ReservationByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrReservationNotFound, "reservation %s", id)
	}
	if !actor.AtLeast(shared.RoleOrganizer) && !r.IsOwnedBy(actor.UserID) {
		return nil, errs.Mark(errs.Wrapf(ErrReservationNotFound, "reservation %s", id), errs.ErrNotFound)
	}
	return newReservationView(r), nil
}
