package reservation

import (
	"errors"
	"fmt"
	"time"

	"booth-reservation/internal/domain/daterange"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid reservation status transition")

// TransitionError names the rejected move.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move reservation from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

type Reservation struct {
	id        uuid.UUID
	boothID   uuid.UUID
	renterID  uuid.UUID
	period    daterange.Range
	status    Status
	price     Money
	note      Note
	createdAt time.Time
	updatedAt *time.Time
}

// NewReservation creates a pending reservation. Callers must have checked the event bounds and conflicts first.
func NewReservation(boothID, renterID uuid.UUID, period daterange.Range, price Money, note Note, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		boothID:   boothID,
		renterID:  renterID,
		period:    period,
		status:    StatusPending,
		price:     price,
		note:      note,
		createdAt: now,
	}
}

func Reconstruct(
	id, boothID, renterID uuid.UUID,
	period daterange.Range,
	status Status,
	price Money,
	note Note,
	createdAt time.Time,
	updatedAt *time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		boothID:   boothID,
		renterID:  renterID,
		period:    period,
		status:    status,
		price:     price,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// TransitionTo moves the reservation to next and reports whether its membership in the active set changed.
func (r *Reservation) TransitionTo(next Status, now time.Time) (bool, error) {
	if !r.status.CanTransitionTo(next) {
		return false, &TransitionError{From: r.status, To: next}
	}
	wasActive := r.status.IsActive()
	r.status = next
	r.updatedAt = &now
	return wasActive != next.IsActive(), nil
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) IsOwnedBy(renterID uuid.UUID) bool {
	return r.renterID == renterID
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) BoothID() uuid.UUID      { return r.boothID }
func (r *Reservation) RenterID() uuid.UUID     { return r.renterID }
func (r *Reservation) Period() daterange.Range { return r.period }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) Price() Money            { return r.price }
func (r *Reservation) Note() Note              { return r.note }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() *time.Time   { return r.updatedAt }

// ActivePeriods returns the ranges still claimed by the given reservations.
func ActivePeriods(rs []*Reservation) []daterange.Range {
	out := make([]daterange.Range, 0, len(rs))
	for _, r := range rs {
		if r.IsActive() {
			out = append(out, r.period)
		}
	}
	return out
}
