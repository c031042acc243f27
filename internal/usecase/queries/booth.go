package queries

import (
	"context"
	"log/slog"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type BoothQueries interface {
	GetAvailability(ctx context.Context, boothID uuid.UUID) (*AvailabilityView, error)
	ListReservations(ctx context.Context, boothID uuid.UUID) ([]*ReservationView, error)
}

type boothQueriesImpl struct {
	reads shared.Reads
	cache shared.AvailabilityCache
}

func NewBoothQueries(uow shared.UnitOfWork, cache shared.AvailabilityCache) BoothQueries {
	return &boothQueriesImpl{reads: uow.Reads(), cache: cache}
}

// GetAvailability serves the cached copy when present and falls back to the stored booth.
// Cache failures degrade to a store read.
func (q *boothQueriesImpl) GetAvailability(ctx context.Context, boothID uuid.UUID) (*AvailabilityView, error) {
	if a, ok, err := q.cache.Get(ctx, boothID); err != nil {
		slog.WarnContext(ctx, "availability cache read failed", "booth_id", boothID, "error", err.Error())
	} else if ok {
		return &AvailabilityView{BoothID: boothID, Availability: a.String()}, nil
	}

	b, err := q.reads.BoothByID(ctx, boothID)
	if err != nil {
		return nil, notFound(err, ErrBoothNotFound, "booth %s", boothID)
	}
	q.fill(ctx, b)
	return &AvailabilityView{BoothID: b.ID(), Availability: b.Availability().String()}, nil
}

func (q *boothQueriesImpl) ListReservations(ctx context.Context, boothID uuid.UUID) ([]*ReservationView, error) {
	if _, err := q.reads.BoothByID(ctx, boothID); err != nil {
		return nil, notFound(err, ErrBoothNotFound, "booth %s", boothID)
	}
	rs, err := q.reads.ReservationsByBoothID(ctx, boothID)
	if err != nil {
		return nil, err
	}
	views := make([]*ReservationView, 0, len(rs))
	for _, r := range rs {
		views = append(views, newReservationView(r))
	}
	return views, nil
}

// fill stores what was read under its version; a newer entry from a committed write wins.
func (q *boothQueriesImpl) fill(ctx context.Context, b *booth.Booth) {
	if err := q.cache.Put(ctx, b.ID(), b.Availability(), b.Version()); err != nil {
		slog.WarnContext(ctx, "availability cache write failed", "booth_id", b.ID(), "error", err.Error())
	}
}
