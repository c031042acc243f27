package booth

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"booth-reservation/internal/domain/daterange"

	"github.com/google/uuid"
)

const MaxNameLength = 120

var ErrInvalidName = errors.New("booth name must be 1-120 characters")

type Booth struct {
	id           uuid.UUID
	eventID      uuid.UUID
	name         string
	status       ApprovalStatus
	availability Availability
	version      int64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBooth creates a booth awaiting approval, with no reservations yet.
func NewBooth(eventID uuid.UUID, name string, eventPeriod daterange.Range, now time.Time) (*Booth, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	return &Booth{
		id:           uuid.New(),
		eventID:      eventID,
		name:         name,
		status:       ApprovalPending,
		availability: ComputeAvailability(eventPeriod, nil),
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstruct(
	id, eventID uuid.UUID,
	name string,
	status ApprovalStatus,
	availability Availability,
	version int64,
	createdAt, updatedAt time.Time,
) *Booth {
	return &Booth{
		id:           id,
		eventID:      eventID,
		name:         name,
		status:       status,
		availability: availability,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Recompute refreshes the cached availability and reports whether it changed.
// Every change bumps the availability version.
func (b *Booth) Recompute(eventPeriod daterange.Range, active []daterange.Range, now time.Time) bool {
	next := ComputeAvailability(eventPeriod, active)
	if next == b.availability {
		return false
	}
	b.availability = next
	b.version++
	b.updatedAt = now
	return true
}

func (b *Booth) ID() uuid.UUID              { return b.id }
func (b *Booth) EventID() uuid.UUID         { return b.eventID }
func (b *Booth) Name() string               { return b.name }
func (b *Booth) Status() ApprovalStatus     { return b.status }
func (b *Booth) Availability() Availability { return b.availability }
func (b *Booth) Version() int64             { return b.version }
func (b *Booth) CreatedAt() time.Time       { return b.createdAt }
func (b *Booth) UpdatedAt() time.Time       { return b.updatedAt }
