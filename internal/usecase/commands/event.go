package commands

import (
	"context"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/domain/daterange"
	"booth-reservation/internal/domain/event"
	"booth-reservation/internal/infra"
	"booth-reservation/internal/pkg/clock"
	"booth-reservation/internal/pkg/errs"
	"booth-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateEventInput struct {
	Name      string
	StartDate string
	EndDate   string
}

type CreateBoothInput struct {
	EventID uuid.UUID
	Name    string
}

type EventCommands interface {
	CreateEvent(ctx context.Context, in CreateEventInput, actor shared.Actor) (uuid.UUID, error)
	CreateBooth(ctx context.Context, in CreateBoothInput, actor shared.Actor) (uuid.UUID, error)
}

type eventUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEventUseCase(uow shared.UnitOfWork, clk clock.Clock) EventCommands {
	return &eventUseCaseImpl{uow: uow, clock: clk}
}

func (uc *eventUseCaseImpl) CreateEvent(ctx context.Context, in CreateEventInput, actor shared.Actor) (uuid.UUID, error) {
	if !actor.AtLeast(shared.RoleOrganizer) {
		return uuid.Nil, fail(ErrNotPermitted, "creating events requires the organizer role")
	}
	period, err := daterange.Parse(in.StartDate, in.EndDate)
	if err != nil {
		return uuid.Nil, failWith(errs.Wrap(err, "event dates"), ErrInvalidInput)
	}
	ev, err := event.NewEvent(in.Name, period, actor.UserID, uc.clock.Now())
	if err != nil {
		return uuid.Nil, failWith(err, ErrInvalidInput)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Events().Create(ctx, ev)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return ev.ID(), nil
}

func (uc *eventUseCaseImpl) CreateBooth(ctx context.Context, in CreateBoothInput, actor shared.Actor) (uuid.UUID, error) {
	if !actor.AtLeast(shared.RoleOrganizer) {
		return uuid.Nil, fail(ErrNotPermitted, "creating booths requires the organizer role")
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Events().FindByID(ctx, in.EventID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return fail(ErrEventNotFound, "event %s", in.EventID)
			}
			return err
		}
		if !managesEvent(actor, ev) {
			return fail(ErrNotPermitted, "event %s belongs to another organizer", ev.ID())
		}

		b, err := booth.NewBooth(ev.ID(), in.Name, ev.Period(), uc.clock.Now())
		if err != nil {
			return failWith(err, ErrInvalidInput)
		}
		if err := tx.Booths().Create(ctx, b); err != nil {
			return err
		}
		createdID = b.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}
