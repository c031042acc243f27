package request

import (
	"booth-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

func (r CreateEventRequest) ToInput() commands.CreateEventInput {
	return commands.CreateEventInput{
		Name:      r.Name,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

type CreateBoothRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}

func (r CreateBoothRequest) ToInput(eventID uuid.UUID) commands.CreateBoothInput {
	return commands.CreateBoothInput{EventID: eventID, Name: r.Name}
}
