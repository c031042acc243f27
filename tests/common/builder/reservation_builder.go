//go:build unit || e2e

package builder

import (
	"time"

	"booth-reservation/internal/domain/daterange"
	"booth-reservation/internal/domain/reservation"
	reqdto "booth-reservation/internal/handler/dto/request"
	sqlc "booth-reservation/internal/infra/sqlc/generated"
	"booth-reservation/internal/pkg/pgconv"
	"booth-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	BoothID    uuid.UUID
	RenterID   uuid.UUID
	StartDate  string
	EndDate    string
	Status     reservation.Status
	TotalPrice int64
	Note       string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		BoothID:    uuid.New(),
		RenterID:   uuid.New(),
		StartDate:  "2025-10-01",
		EndDate:    "2025-10-02",
		Status:     reservation.StatusPending,
		TotalPrice: 12000,
		Note:       "near the entrance please",
		CreatedAt:  time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Period() daterange.Range {
	return daterange.MustParse(b.StartDate, b.EndDate)
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	price, err := reservation.NewMoney(b.TotalPrice)
	if err != nil {
		panic(err)
	}
	note, err := reservation.NewNote(b.Note)
	if err != nil {
		panic(err)
	}
	return reservation.Reconstruct(b.ID, b.BoothID, b.RenterID, b.Period(), b.Status, price, note, b.CreatedAt, b.UpdatedAt)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	p := b.Period()
	return sqlc.Reservations{
		ID:              b.ID,
		BoothID:         b.BoothID,
		RenterID:        b.RenterID,
		StartDate:       pgconv.DayToPgtype(p.Start()),
		EndDate:         pgconv.DayToPgtype(p.End()),
		Status:          string(b.Status),
		TotalPriceCents: b.TotalPrice,
		Note:            pgconv.OptionalStringToPgtype(b.Note),
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgconv.TimePtrToPgtype(b.UpdatedAt),
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	price := b.TotalPrice
	note := b.Note
	return reqdto.CreateReservationRequest{
		BoothID:    b.BoothID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: &price,
		Note:       &note,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	v := &queries.ReservationView{
		ID:         b.ID,
		BoothID:    b.BoothID,
		RenterID:   b.RenterID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Status:     string(b.Status),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if b.Note != "" {
		note := b.Note
		v.Note = &note
	}
	return v
}
