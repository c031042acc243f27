package reservation

import (
	"errors"
	"fmt"

	"booth-reservation/internal/domain/daterange"

	"github.com/google/uuid"
)

var ErrConflict = errors.New("reservation dates overlap an active reservation")

// ConflictError identifies the active reservation a candidate collided with.
type ConflictError struct {
	ReservationID uuid.UUID
	Period        daterange.Range
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("dates overlap reservation %s (%s)", e.ReservationID, e.Period)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// CheckConflict rejects candidate if it shares a day with any active reservation in existing.
// Declined and cancelled reservations are ignored.
func CheckConflict(candidate daterange.Range, existing []*Reservation) error {
	for _, r := range existing {
		if !r.IsActive() {
			continue
		}
		if candidate.Overlaps(r.period) {
			return &ConflictError{ReservationID: r.id, Period: r.period}
		}
	}
	return nil
}
