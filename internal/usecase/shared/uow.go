package shared

import (
	"context"
	"time"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/domain/event"
	"booth-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn as one all-or-nothing unit. Serialization failures and deadlocks re-run fn from the start.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads gives point reads outside any unit, for the query side.
	Reads() Reads
}

type Tx interface {
	Events() EventRepository
	Booths() BoothRepository
	Reservations() ReservationRepository
	Notifications() NotificationRepository
}

type Reads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	BoothByID(ctx context.Context, id uuid.UUID) (*booth.Booth, error)
	BoothsByEventID(ctx context.Context, eventID uuid.UUID) ([]*booth.Booth, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ReservationsByBoothID(ctx context.Context, boothID uuid.UUID) ([]*reservation.Reservation, error)
}

type EventRepository interface {
	Create(ctx context.Context, e *event.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
}

type BoothRepository interface {
	Create(ctx context.Context, b *booth.Booth) error
	FindByID(ctx context.Context, id uuid.UUID) (*booth.Booth, error)
	// LockByID reads the booth and holds it exclusively until the unit ends.
	// Every write touching the booth's reservations must take this lock first.
	LockByID(ctx context.Context, id uuid.UUID) (*booth.Booth, error)
	UpdateAvailability(ctx context.Context, b *booth.Booth) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ListByBoothID returns every reservation of the booth, any status, ordered by start date.
	ListByBoothID(ctx context.Context, boothID uuid.UUID) ([]*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, r *reservation.Reservation) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
