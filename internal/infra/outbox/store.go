package outbox

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

// Batch records the outcome of each claimed job.
type Batch interface {
	MarkSent(ctx context.Context, jobID uuid.UUID) error
	MarkRetry(ctx context.Context, jobID uuid.UUID, lastError string, nextRun time.Time, giveUp bool) error
}

// Store hands due jobs to fn. Outcomes recorded through the batch are kept only if fn returns nil.
type Store interface {
	ClaimDue(ctx context.Context, now time.Time, limit int32, fn func(ctx context.Context, jobs []Job, b Batch) error) error
}
