package commands

import (
	"context"
	"log/slog"
	"time"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/domain/daterange"
	"booth-reservation/internal/domain/event"
	"booth-reservation/internal/domain/reservation"
	"booth-reservation/internal/infra"
	"booth-reservation/internal/pkg/clock"
	"booth-reservation/internal/pkg/errs"
	"booth-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	BoothID    uuid.UUID
	StartDate  string
	EndDate    string
	TotalPrice int64
	Note       string
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput, actor shared.Actor) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, newStatus string, actor shared.Actor) error
	CancelReservation(ctx context.Context, reservationID uuid.UUID, actor shared.Actor) error
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.AvailabilityCache
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, cache shared.AvailabilityCache, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, in CreateReservationInput, actor shared.Actor) (uuid.UUID, error) {
	period, err := parsePeriod(in.StartDate, in.EndDate)
	if err != nil {
		return uuid.Nil, err
	}
	price, err := reservation.NewMoney(in.TotalPrice)
	if err != nil {
		return uuid.Nil, failWith(err, ErrInvalidInput)
	}
	note, err := reservation.NewNote(in.Note)
	if err != nil {
		return uuid.Nil, failWith(err, ErrInvalidInput)
	}
	if actor.UserID == uuid.Nil {
		return uuid.Nil, fail(ErrNotPermitted, "")
	}

	var (
		createdID uuid.UUID
		committed *booth.Booth
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, ev, err := lockBoothWithEvent(ctx, tx, in.BoothID)
		if err != nil {
			return err
		}
		if !ev.Covers(period) {
			return fail(ErrOutsideEvent, "%s not within %s", period, ev.Period())
		}

		existing, err := tx.Reservations().ListByBoothID(ctx, b.ID())
		if err != nil {
			return err
		}
		if err := reservation.CheckConflict(period, existing); err != nil {
			return failWith(err, ErrReservationConflict)
		}

		now := uc.clock.Now()
		res := reservation.NewReservation(b.ID(), actor.UserID, period, price, note, now)
		if err := tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return failWith(err, ErrReservationConflict)
			}
			return err
		}

		if err := refreshAvailability(ctx, tx, b, ev, append(existing, res), now); err != nil {
			return err
		}
		createdID, committed = res.ID(), b
		return enqueueNotification(ctx, tx, res, b, now)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.publishAvailability(ctx, committed)
	return createdID, nil
}

func (uc *reservationUseCaseImpl) UpdateStatus(ctx context.Context, reservationID uuid.UUID, newStatus string, actor shared.Actor) error {
	next, ok := reservation.ParseStatus(newStatus)
	if !ok {
		return fail(ErrInvalidInput, "unknown status %q", newStatus)
	}
	if next != reservation.StatusApproved && next != reservation.StatusDeclined {
		return fail(ErrUnsupportedStatus, "requested %s", next)
	}
	if !actor.AtLeast(shared.RoleOrganizer) {
		return fail(ErrNotPermitted, "")
	}

	return uc.transition(ctx, reservationID, next, func(_ *reservation.Reservation, ev *event.Event) error {
		if !managesEvent(actor, ev) {
			return fail(ErrNotPermitted, "")
		}
		return nil
	})
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, reservationID uuid.UUID, actor shared.Actor) error {
	return uc.transition(ctx, reservationID, reservation.StatusCancelled, func(r *reservation.Reservation, ev *event.Event) error {
		if !r.IsOwnedBy(actor.UserID) && !managesEvent(actor, ev) {
			return fail(ErrNotPermitted, "")
		}
		return nil
	})
}

// transition applies one state change under the booth lock and recomputes availability when the
// reservation entered or left the active set.
func (uc *reservationUseCaseImpl) transition(
	ctx context.Context,
	reservationID uuid.UUID,
	next reservation.Status,
	authorize func(*reservation.Reservation, *event.Event) error,
) error {
	var committed *booth.Booth
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		target, err := findReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		b, ev, err := lockBoothWithEvent(ctx, tx, target.BoothID())
		if err != nil {
			return err
		}
		// Re-read under the lock; the status may have moved while we waited.
		if target, err = findReservation(ctx, tx, reservationID); err != nil {
			return err
		}
		if err := authorize(target, ev); err != nil {
			return err
		}

		now := uc.clock.Now()
		membershipChanged, err := target.TransitionTo(next, now)
		if err != nil {
			return failWith(err, ErrTransitionRejected)
		}
		if err := tx.Reservations().UpdateStatus(ctx, target); err != nil {
			return err
		}

		if membershipChanged {
			all, err := tx.Reservations().ListByBoothID(ctx, b.ID())
			if err != nil {
				return err
			}
			if err := refreshAvailability(ctx, tx, b, ev, withReplaced(all, target), now); err != nil {
				return err
			}
		}
		committed = b
		return enqueueNotification(ctx, tx, target, b, now)
	})
	if err != nil {
		return err
	}

	uc.publishAvailability(ctx, committed)
	return nil
}

// publishAvailability writes the committed availability through to the cache. When that fails the entry
// is dropped instead, so the next read goes to storage.
func (uc *reservationUseCaseImpl) publishAvailability(ctx context.Context, b *booth.Booth) {
	err := uc.cache.Put(ctx, b.ID(), b.Availability(), b.Version())
	if err == nil {
		return
	}
	slog.WarnContext(ctx, "failed to write availability cache", "booth_id", b.ID(), "error", err.Error())
	if err := uc.cache.Invalidate(ctx, b.ID()); err != nil {
		slog.WarnContext(ctx, "failed to invalidate availability cache", "booth_id", b.ID(), "error", err.Error())
	}
}

func parsePeriod(start, end string) (daterange.Range, error) {
	period, err := daterange.Parse(start, end)
	switch {
	case err == nil:
		return period, nil
	case errs.Is(err, daterange.ErrInvalidRange):
		return daterange.Range{}, fail(ErrReversedRange, "%s..%s", start, end)
	default:
		return daterange.Range{}, failWith(errs.Wrap(err, "parse dates"), ErrInvalidInput)
	}
}

func lockBoothWithEvent(ctx context.Context, tx shared.Tx, boothID uuid.UUID) (*booth.Booth, *event.Event, error) {
	b, err := tx.Booths().LockByID(ctx, boothID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, fail(ErrBoothNotFound, "booth %s", boothID)
		}
		return nil, nil, err
	}
	ev, err := tx.Events().FindByID(ctx, b.EventID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, fail(ErrEventNotFound, "event %s", b.EventID())
		}
		return nil, nil, err
	}
	return b, ev, nil
}

func findReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	r, err := tx.Reservations().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, fail(ErrReservationNotFound, "reservation %s", id)
		}
		return nil, err
	}
	return r, nil
}

// refreshAvailability recomputes the booth from its full reservation list and writes it back only when the
// value moved.
func refreshAvailability(ctx context.Context, tx shared.Tx, b *booth.Booth, ev *event.Event, all []*reservation.Reservation, now time.Time) error {
	if !b.Recompute(ev.Period(), reservation.ActivePeriods(all), now) {
		return nil
	}
	return tx.Booths().UpdateAvailability(ctx, b)
}

// withReplaced swaps the stale copy of updated in rs for updated itself.
func withReplaced(rs []*reservation.Reservation, updated *reservation.Reservation) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(rs))
	for _, r := range rs {
		if r.ID() == updated.ID() {
			out = append(out, updated)
			continue
		}
		out = append(out, r)
	}
	return out
}

func managesEvent(actor shared.Actor, ev *event.Event) bool {
	if actor.AtLeast(shared.RoleAdmin) {
		return true
	}
	return actor.AtLeast(shared.RoleOrganizer) && ev.OrganizerID() == actor.UserID
}
