package queries

import (
	"time"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/domain/event"
	"booth-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type EventView struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	OrganizerID uuid.UUID   `json:"organizer_id"`
	Booths      []BoothView `json:"booths"`
	CreatedAt   time.Time   `json:"created_at"`
}

type BoothView struct {
	ID           uuid.UUID `json:"id"`
	EventID      uuid.UUID `json:"event_id"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AvailabilityView struct {
	BoothID      uuid.UUID `json:"booth_id"`
	Availability string    `json:"availability"`
}

type ReservationView struct {
	ID         uuid.UUID  `json:"id"`
	BoothID    uuid.UUID  `json:"booth_id"`
	RenterID   uuid.UUID  `json:"renter_id"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Status     string     `json:"status"`
	TotalPrice int64      `json:"total_price"`
	Note       *string    `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func newBoothView(b *booth.Booth) BoothView {
	return BoothView{
		ID:           b.ID(),
		EventID:      b.EventID(),
		Name:         b.Name(),
		Status:       b.Status().String(),
		Availability: b.Availability().String(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
}

func newEventView(e *event.Event, booths []*booth.Booth) *EventView {
	v := &EventView{
		ID:          e.ID(),
		Name:        e.Name(),
		StartDate:   e.Period().Start().String(),
		EndDate:     e.Period().End().String(),
		OrganizerID: e.OrganizerID(),
		Booths:      make([]BoothView, 0, len(booths)),
		CreatedAt:   e.CreatedAt(),
	}
	for _, b := range booths {
		v.Booths = append(v.Booths, newBoothView(b))
	}
	return v
}

func newReservationView(r *reservation.Reservation) *ReservationView {
	v := &ReservationView{
		ID:         r.ID(),
		BoothID:    r.BoothID(),
		RenterID:   r.RenterID(),
		StartDate:  r.Period().Start().String(),
		EndDate:    r.Period().End().String(),
		Status:     r.Status().String(),
		TotalPrice: r.Price().Cents(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
	if !r.Note().IsEmpty() {
		note := r.Note().String()
		v.Note = &note
	}
	return v
}
