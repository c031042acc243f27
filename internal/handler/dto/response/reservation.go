package response

import (
	"time"

	"booth-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID         uuid.UUID  `json:"id"`
	BoothID    uuid.UUID  `json:"boothId"`
	RenterID   uuid.UUID  `json:"renterId"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	Status     string     `json:"status"`
	TotalPrice int64      `json:"totalPrice"`
	Note       *string    `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReservationViews(vs []*queries.ReservationView) ([]ReservationResponse, error) {
	resp := make([]ReservationResponse, 0, len(vs))
	if err := copier.Copy(&resp, &vs); err != nil {
		return nil, err
	}
	return resp, nil
}
