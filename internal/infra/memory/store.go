// Package memory keeps events, booths and reservations in process memory. It gives the same
// guarantees as the PostgreSQL store: one writer per booth at a time, all-or-nothing units,
// and reads that never observe a half-applied unit.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/domain/event"
	"booth-reservation/internal/domain/reservation"
	"booth-reservation/internal/infra"
	"booth-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.RWMutex
	events       map[uuid.UUID]*event.Event
	booths       map[uuid.UUID]*booth.Booth
	reservations map[uuid.UUID]*reservation.Reservation
	jobs         []*job

	locksMu    sync.Mutex
	boothLocks map[uuid.UUID]chan struct{}
}

func NewStore() *Store {
	return &Store{
		events:       make(map[uuid.UUID]*event.Event),
		booths:       make(map[uuid.UUID]*booth.Booth),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		boothLocks:   make(map[uuid.UUID]chan struct{}),
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newTx(s)
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.commit(tx)
	return nil
}

func (s *Store) Reads() shared.Reads {
	return &reads{s: s}
}

func (s *Store) commit(tx *memTx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range tx.events {
		s.events[id] = e
	}
	for id, b := range tx.booths {
		s.booths[id] = b
	}
	for id, r := range tx.reservations {
		s.reservations[id] = r
	}
	s.jobs = append(s.jobs, tx.jobs...)
}

func (s *Store) boothLock(id uuid.UUID) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.boothLocks[id]
	if !ok {
		l = make(chan struct{}, 1)
		s.boothLocks[id] = l
	}
	return l
}

func (s *Store) committedEvent(id uuid.UUID) (*event.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	return e, ok
}

func (s *Store) committedBooth(id uuid.UUID) (*booth.Booth, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.booths[id]
	if !ok {
		return nil, false
	}
	return cloneBooth(b), true
}

func (s *Store) committedReservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, false
	}
	return cloneReservation(r), true
}

func (s *Store) committedReservationsOf(boothID uuid.UUID) map[uuid.UUID]*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[uuid.UUID]*reservation.Reservation)
	for id, r := range s.reservations {
		if r.BoothID() == boothID {
			out[id] = cloneReservation(r)
		}
	}
	return out
}

func (s *Store) committedBoothsOf(eventID uuid.UUID) []*booth.Booth {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*booth.Booth
	for _, b := range s.booths {
		if b.EventID() == eventID {
			out = append(out, cloneBooth(b))
		}
	}
	sortBooths(out)
	return out
}

type reads struct {
	s *Store
}

func (r *reads) EventByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	e, ok := r.s.committedEvent(id)
	if !ok {
		return nil, infra.NotFound("event not found")
	}
	return e, nil
}

func (r *reads) BoothByID(_ context.Context, id uuid.UUID) (*booth.Booth, error) {
	b, ok := r.s.committedBooth(id)
	if !ok {
		return nil, infra.NotFound("booth not found")
	}
	return b, nil
}

func (r *reads) BoothsByEventID(_ context.Context, eventID uuid.UUID) ([]*booth.Booth, error) {
	return r.s.committedBoothsOf(eventID), nil
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.s.committedReservation(id)
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return res, nil
}

func (r *reads) ReservationsByBoothID(_ context.Context, boothID uuid.UUID) ([]*reservation.Reservation, error) {
	return sortedReservations(r.s.committedReservationsOf(boothID)), nil
}

func cloneBooth(b *booth.Booth) *booth.Booth {
	return booth.Reconstruct(b.ID(), b.EventID(), b.Name(), b.Status(), b.Availability(), b.Version(), b.CreatedAt(), b.UpdatedAt())
}

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	var updatedAt *time.Time
	if u := r.UpdatedAt(); u != nil {
		t := *u
		updatedAt = &t
	}
	return reservation.Reconstruct(r.ID(), r.BoothID(), r.RenterID(), r.Period(), r.Status(), r.Price(), r.Note(), r.CreatedAt(), updatedAt)
}

func sortBooths(bs []*booth.Booth) {
	sort.Slice(bs, func(i, j int) bool {
		if !bs[i].CreatedAt().Equal(bs[j].CreatedAt()) {
			return bs[i].CreatedAt().Before(bs[j].CreatedAt())
		}
		return bs[i].ID().String() < bs[j].ID().String()
	})
}

func sortedReservations(m map[uuid.UUID]*reservation.Reservation) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(m))
	for _, r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Period().Start().Compare(out[j].Period().Start()); c != 0 {
			return c < 0
		}
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().Before(out[j].CreatedAt())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}
