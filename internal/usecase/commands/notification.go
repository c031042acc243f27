package commands

import (
	"context"
	"encoding/json"
	"time"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/domain/reservation"
	"booth-reservation/internal/pkg/errs"
	"booth-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const notificationKind = "reservation"

const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationApproved  = "reservation.approved"
	TopicReservationDeclined  = "reservation.declined"
	TopicReservationCancelled = "reservation.cancelled"
)

var topicByStatus = map[reservation.Status]string{
	reservation.StatusPending:   TopicReservationCreated,
	reservation.StatusApproved:  TopicReservationApproved,
	reservation.StatusDeclined:  TopicReservationDeclined,
	reservation.StatusCancelled: TopicReservationCancelled,
}

type ReservationNotification struct {
	ReservationID uuid.UUID          `json:"reservationId"`
	BoothID       uuid.UUID          `json:"boothId"`
	RenterID      uuid.UUID          `json:"renterId"`
	Status        reservation.Status `json:"status"`
	StartDate     string             `json:"startDate"`
	EndDate       string             `json:"endDate"`
	Availability  booth.Availability `json:"availability"`
}

// enqueueNotification writes the outbox row in the same unit as the transition it describes.
func enqueueNotification(ctx context.Context, tx shared.Tx, r *reservation.Reservation, b *booth.Booth, now time.Time) error {
	payload, err := json.Marshal(ReservationNotification{
		ReservationID: r.ID(),
		BoothID:       b.ID(),
		RenterID:      r.RenterID(),
		Status:        r.Status(),
		StartDate:     r.Period().Start().String(),
		EndDate:       r.Period().End().String(),
		Availability:  b.Availability(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal notification payload")
	}
	return tx.Notifications().CreateJob(ctx, notificationKind, topicByStatus[r.Status()], payload, now)
}
