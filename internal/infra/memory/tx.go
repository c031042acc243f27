package memory

import (
	"context"
	"time"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/domain/event"
	"booth-reservation/internal/domain/reservation"
	"booth-reservation/internal/infra"
	"booth-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx buffers every write until commit. Reads inside the unit see its own writes layered over
// the committed state.
type memTx struct {
	s *Store

	events       map[uuid.UUID]*event.Event
	booths       map[uuid.UUID]*booth.Booth
	reservations map[uuid.UUID]*reservation.Reservation
	jobs         []*job

	held map[uuid.UUID]chan struct{}
}

func newTx(s *Store) *memTx {
	return &memTx{
		s:            s,
		events:       make(map[uuid.UUID]*event.Event),
		booths:       make(map[uuid.UUID]*booth.Booth),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		held:         make(map[uuid.UUID]chan struct{}),
	}
}

func (t *memTx) Events() shared.EventRepository             { return txEvents{t} }
func (t *memTx) Booths() shared.BoothRepository             { return txBooths{t} }
func (t *memTx) Reservations() shared.ReservationRepository { return txReservations{t} }
func (t *memTx) Notifications() shared.NotificationRepository {
	return txNotifications{t}
}

func (t *memTx) lock(ctx context.Context, boothID uuid.UUID) error {
	if _, ok := t.held[boothID]; ok {
		return nil
	}
	l := t.s.boothLock(boothID)
	select {
	case l <- struct{}{}:
		t.held[boothID] = l
		return nil
	case <-ctx.Done():
		return infra.WrapRepoErr("failed to lock booth", ctx.Err(), infra.KindDBFailure)
	}
}

func (t *memTx) releaseLocks() {
	for id, l := range t.held {
		<-l
		delete(t.held, id)
	}
}

func (t *memTx) event(id uuid.UUID) (*event.Event, bool) {
	if e, ok := t.events[id]; ok {
		return e, true
	}
	return t.s.committedEvent(id)
}

func (t *memTx) booth(id uuid.UUID) (*booth.Booth, bool) {
	if b, ok := t.booths[id]; ok {
		return cloneBooth(b), true
	}
	return t.s.committedBooth(id)
}

func (t *memTx) reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	if r, ok := t.reservations[id]; ok {
		return cloneReservation(r), true
	}
	return t.s.committedReservation(id)
}

func (t *memTx) reservationsOf(boothID uuid.UUID) []*reservation.Reservation {
	all := t.s.committedReservationsOf(boothID)
	for id, r := range t.reservations {
		if r.BoothID() == boothID {
			all[id] = cloneReservation(r)
		}
	}
	return sortedReservations(all)
}

type txEvents struct{ t *memTx }

func (r txEvents) Create(_ context.Context, e *event.Event) error {
	if _, exists := r.t.event(e.ID()); exists {
		return infra.WrapRepoErr("failed to create event", nil, infra.KindDuplicateKey)
	}
	r.t.events[e.ID()] = e
	return nil
}

func (r txEvents) FindByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	e, ok := r.t.event(id)
	if !ok {
		return nil, infra.NotFound("event not found")
	}
	return e, nil
}

type txBooths struct{ t *memTx }

func (r txBooths) Create(_ context.Context, b *booth.Booth) error {
	if _, ok := r.t.event(b.EventID()); !ok {
		return infra.WrapRepoErr("failed to create booth", nil, infra.KindForeignKeyViolated)
	}
	if _, exists := r.t.booth(b.ID()); exists {
		return infra.WrapRepoErr("failed to create booth", nil, infra.KindDuplicateKey)
	}
	r.t.booths[b.ID()] = cloneBooth(b)
	return nil
}

func (r txBooths) FindByID(_ context.Context, id uuid.UUID) (*booth.Booth, error) {
	b, ok := r.t.booth(id)
	if !ok {
		return nil, infra.NotFound("booth not found")
	}
	return b, nil
}

func (r txBooths) LockByID(ctx context.Context, id uuid.UUID) (*booth.Booth, error) {
	if _, ok := r.t.booth(id); !ok {
		return nil, infra.NotFound("booth not found")
	}
	if err := r.t.lock(ctx, id); err != nil {
		return nil, err
	}
	// Read again now that no other unit can change it.
	return r.FindByID(ctx, id)
}

func (r txBooths) UpdateAvailability(_ context.Context, b *booth.Booth) error {
	current, ok := r.t.booth(b.ID())
	if !ok {
		return infra.NotFound("booth not found")
	}
	r.t.booths[b.ID()] = booth.Reconstruct(
		current.ID(), current.EventID(), current.Name(), current.Status(),
		b.Availability(), b.Version(), current.CreatedAt(), b.UpdatedAt(),
	)
	return nil
}

type txReservations struct{ t *memTx }

func (r txReservations) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.t.booth(res.BoothID()); !ok {
		return infra.WrapRepoErr("failed to create reservation", nil, infra.KindForeignKeyViolated)
	}
	if _, exists := r.t.reservation(res.ID()); exists {
		return infra.WrapRepoErr("failed to create reservation", nil, infra.KindDuplicateKey)
	}
	// Same backstop as the exclusion constraint in the PostgreSQL schema.
	if res.IsActive() {
		if err := reservation.CheckConflict(res.Period(), r.t.reservationsOf(res.BoothID())); err != nil {
			return infra.WrapRepoErr("failed to create reservation", err, infra.KindConflict)
		}
	}
	r.t.reservations[res.ID()] = cloneReservation(res)
	return nil
}

func (r txReservations) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.t.reservation(id)
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return res, nil
}

func (r txReservations) ListByBoothID(_ context.Context, boothID uuid.UUID) ([]*reservation.Reservation, error) {
	return r.t.reservationsOf(boothID), nil
}

func (r txReservations) UpdateStatus(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.t.reservation(res.ID()); !ok {
		return infra.NotFound("reservation not found")
	}
	r.t.reservations[res.ID()] = cloneReservation(res)
	return nil
}

type txNotifications struct{ t *memTx }

func (r txNotifications) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.t.jobs = append(r.t.jobs, &job{
		id:      uuid.New(),
		kind:    kind,
		topic:   topic,
		payload: append([]byte(nil), payload...),
		runAt:   runAt,
		status:  statusQueued,
	})
	return nil
}
