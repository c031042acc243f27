package converter

import (
	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/domain/event"
	"booth-reservation/internal/domain/reservation"
	sqlc "booth-reservation/internal/infra/sqlc/generated"
	"booth-reservation/internal/pkg/errs"
	"booth-reservation/internal/pkg/pgconv"
)

func EventToInfra(e *event.Event) sqlc.CreateEventParams {
	return sqlc.CreateEventParams{
		ID:          e.ID(),
		Name:        e.Name(),
		StartDate:   pgconv.DayToPgtype(e.Period().Start()),
		EndDate:     pgconv.DayToPgtype(e.Period().End()),
		OrganizerID: e.OrganizerID(),
		CreatedAt:   pgconv.TimeToPgtype(e.CreatedAt()),
	}
}

func EventToDomain(row sqlc.Events) (*event.Event, error) {
	period, err := pgconv.RangeFromPgtype(row.StartDate, row.EndDate)
	if err != nil {
		return nil, errs.Wrapf(err, "event %s has an unreadable period", row.ID)
	}
	return event.Reconstruct(row.ID, row.Name, period, row.OrganizerID, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func BoothToInfra(b *booth.Booth) sqlc.CreateBoothParams {
	return sqlc.CreateBoothParams{
		ID:                  b.ID(),
		EventID:             b.EventID(),
		Name:                b.Name(),
		Status:              b.Status().String(),
		AvailabilityStatus:  b.Availability().String(),
		AvailabilityVersion: b.Version(),
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BoothToDomain(row sqlc.Booths) (*booth.Booth, error) {
	status := booth.ApprovalStatus(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("booth %s has unknown status %q", row.ID, row.Status)
	}
	availability, ok := booth.ParseAvailability(row.AvailabilityStatus)
	if !ok {
		return nil, errs.Newf("booth %s has unknown availability %q", row.ID, row.AvailabilityStatus)
	}
	return booth.Reconstruct(
		row.ID,
		row.EventID,
		row.Name,
		status,
		availability,
		row.AvailabilityVersion,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationToInfra(r *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:              r.ID(),
		BoothID:         r.BoothID(),
		RenterID:        r.RenterID(),
		StartDate:       pgconv.DayToPgtype(r.Period().Start()),
		EndDate:         pgconv.DayToPgtype(r.Period().End()),
		Status:          r.Status().String(),
		TotalPriceCents: r.Price().Cents(),
		Note:            pgconv.OptionalStringToPgtype(r.Note().String()),
		CreatedAt:       pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReservationStatusToInfra(r *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		ID:        r.ID(),
		Status:    r.Status().String(),
		UpdatedAt: pgconv.TimePtrToPgtype(r.UpdatedAt()),
	}
}

func ReservationToDomain(row sqlc.Reservations) (*reservation.Reservation, error) {
	period, err := pgconv.RangeFromPgtype(row.StartDate, row.EndDate)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has an unreadable period", row.ID)
	}
	status, ok := reservation.ParseStatus(row.Status)
	if !ok {
		return nil, errs.Newf("reservation %s has unknown status %q", row.ID, row.Status)
	}
	price, err := reservation.NewMoney(row.TotalPriceCents)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", row.ID)
	}
	// Stored notes were validated on the way in.
	note, _ := reservation.NewNote(pgconv.StringFromPgtype(row.Note))

	return reservation.Reconstruct(
		row.ID,
		row.BoothID,
		row.RenterID,
		period,
		status,
		price,
		note,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.UpdatedAt),
	), nil
}

func ReservationsToDomain(rows []sqlc.Reservations) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := ReservationToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
