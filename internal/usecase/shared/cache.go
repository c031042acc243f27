package shared

import (
	"context"

	"booth-reservation/internal/domain/booth"

	"github.com/google/uuid"
)

// AvailabilityCache holds copies of booth availability for the read side. The stored booth stays authoritative.
// Each entry carries the booth's availability version and Put never replaces an entry with an equal or newer
// version, so a reader that loaded an old row cannot overwrite what a later commit published.
type AvailabilityCache interface {
	Get(ctx context.Context, boothID uuid.UUID) (booth.Availability, bool, error)
	Put(ctx context.Context, boothID uuid.UUID, a booth.Availability, version int64) error
	Invalidate(ctx context.Context, boothIDs ...uuid.UUID) error
}

type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) Get(context.Context, uuid.UUID) (booth.Availability, bool, error) {
	return "", false, nil
}

func (NoopAvailabilityCache) Put(context.Context, uuid.UUID, booth.Availability, int64) error {
	return nil
}

func (NoopAvailabilityCache) Invalidate(context.Context, ...uuid.UUID) error {
	return nil
}
