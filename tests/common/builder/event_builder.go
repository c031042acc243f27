//go:build unit || e2e

package builder

import (
	"time"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/domain/daterange"
	"booth-reservation/internal/domain/event"
	reqdto "booth-reservation/internal/handler/dto/request"
	sqlc "booth-reservation/internal/infra/sqlc/generated"
	"booth-reservation/internal/pkg/pgconv"
	"booth-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventBuilder struct {
	ID          uuid.UUID
	Name        string
	StartDate   string
	EndDate     string
	OrganizerID uuid.UUID
	CreatedAt   time.Time
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:          uuid.New(),
		Name:        "Autumn Craft Fair",
		StartDate:   "2025-10-01",
		EndDate:     "2025-10-05",
		OrganizerID: uuid.New(),
		CreatedAt:   time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) Period() daterange.Range {
	return daterange.MustParse(b.StartDate, b.EndDate)
}

func (b *EventBuilder) BuildDomain() *event.Event {
	return event.Reconstruct(b.ID, b.Name, b.Period(), b.OrganizerID, b.CreatedAt)
}

func (b *EventBuilder) BuildInfra() sqlc.Events {
	p := b.Period()
	return sqlc.Events{
		ID:          b.ID,
		Name:        b.Name,
		StartDate:   pgconv.DayToPgtype(p.Start()),
		EndDate:     pgconv.DayToPgtype(p.End()),
		OrganizerID: b.OrganizerID,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *EventBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequest {
	return reqdto.CreateEventRequest{Name: b.Name, StartDate: b.StartDate, EndDate: b.EndDate}
}

func (b *EventBuilder) BuildView(booths ...queries.BoothView) *queries.EventView {
	if booths == nil {
		booths = []queries.BoothView{}
	}
	return &queries.EventView{
		ID:          b.ID,
		Name:        b.Name,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		OrganizerID: b.OrganizerID,
		Booths:      booths,
		CreatedAt:   b.CreatedAt,
	}
}

type BoothBuilder struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	Name         string
	Status       booth.ApprovalStatus
	Availability booth.Availability
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBoothBuilder() *BoothBuilder {
	created := time.Date(2025, 8, 2, 9, 0, 0, 0, time.UTC)
	return &BoothBuilder{
		ID:           uuid.New(),
		EventID:      uuid.New(),
		Name:         "A-1",
		Status:       booth.ApprovalPending,
		Availability: booth.Available,
		Version:      1,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func (b *BoothBuilder) With(mutate func(*BoothBuilder)) *BoothBuilder {
	mutate(b)
	return b
}

func (b *BoothBuilder) BuildDomain() *booth.Booth {
	return booth.Reconstruct(b.ID, b.EventID, b.Name, b.Status, b.Availability, b.Version, b.CreatedAt, b.UpdatedAt)
}

func (b *BoothBuilder) BuildInfra() sqlc.Booths {
	return sqlc.Booths{
		ID:                  b.ID,
		EventID:             b.EventID,
		Name:                b.Name,
		Status:              string(b.Status),
		AvailabilityStatus:  string(b.Availability),
		AvailabilityVersion: b.Version,
		CreatedAt:           pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:           pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BoothBuilder) BuildView() queries.BoothView {
	return queries.BoothView{
		ID:           b.ID,
		EventID:      b.EventID,
		Name:         b.Name,
		Status:       string(b.Status),
		Availability: string(b.Availability),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
