package response

import (
	"time"

	"booth-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BoothResponse struct {
	ID           uuid.UUID `json:"id"`
	EventID      uuid.UUID `json:"eventId"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type EventResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	OrganizerID uuid.UUID       `json:"organizerId"`
	Booths      []BoothResponse `json:"booths"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type AvailabilityResponse struct {
	BoothID      uuid.UUID `json:"boothId"`
	Availability string    `json:"availability"`
}

func FromEventView(v *queries.EventView) (*EventResponse, error) {
	resp := EventResponse{Booths: []BoothResponse{}}
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{BoothID: v.BoothID, Availability: v.Availability}
}
