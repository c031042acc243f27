package event

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"booth-reservation/internal/domain/daterange"

	"github.com/google/uuid"
)

const MaxNameLength = 200

var ErrInvalidName = errors.New("event name must be 1-200 characters")

// Event bounds the days every booth it owns can be reserved for. It is read-only for the reservation engine.
type Event struct {
	id        uuid.UUID
	name      string
	period    daterange.Range
	organizer uuid.UUID
	createdAt time.Time
}

func NewEvent(name string, period daterange.Range, organizer uuid.UUID, now time.Time) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	return &Event{
		id:        uuid.New(),
		name:      name,
		period:    period,
		organizer: organizer,
		createdAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, name string, period daterange.Range, organizer uuid.UUID, createdAt time.Time) *Event {
	return &Event{
		id:        id,
		name:      name,
		period:    period,
		organizer: organizer,
		createdAt: createdAt,
	}
}

// Covers reports whether a reservation range fits inside the event.
func (e *Event) Covers(r daterange.Range) bool {
	return r.IsSubrangeOf(e.period)
}

func (e *Event) ID() uuid.UUID           { return e.id }
func (e *Event) Name() string            { return e.name }
func (e *Event) Period() daterange.Range { return e.period }
func (e *Event) OrganizerID() uuid.UUID  { return e.organizer }
func (e *Event) CreatedAt() time.Time    { return e.createdAt }
