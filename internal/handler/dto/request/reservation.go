package request

import (
	"strings"

	"booth-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	BoothID    uuid.UUID `json:"boothId" binding:"required"`
	StartDate  string    `json:"startDate" binding:"required"`
	EndDate    string    `json:"endDate" binding:"required"`
	TotalPrice *int64    `json:"totalPrice" binding:"required,min=0"`
	Note       *string   `json:"note,omitempty" binding:"omitempty,max=500"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	in := commands.CreateReservationInput{
		BoothID:   r.BoothID,
		StartDate: strings.TrimSpace(r.StartDate),
		EndDate:   strings.TrimSpace(r.EndDate),
	}
	if r.TotalPrice != nil {
		in.TotalPrice = *r.TotalPrice
	}
	if r.Note != nil {
		in.Note = strings.TrimSpace(*r.Note)
	}
	return in
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved declined"`
}
