package memory

import (
	"context"
	"sort"
	"time"

	"booth-reservation/internal/infra"
	"booth-reservation/internal/infra/outbox"

	"github.com/google/uuid"
)

const (
	statusQueued  = "queued"
	statusSending = "sending"
	statusSent    = "sent"
	statusFailed  = "failed"
)

type job struct {
	id        uuid.UUID
	kind      string
	topic     string
	payload   []byte
	runAt     time.Time
	attempts  int32
	status    string
	lastError string
}

// ClaimDue marks the due jobs as sending and runs fn without holding the store lock, so a slow publish
// never stalls units or reads. A second relay skips jobs that are sending. Outcomes are staged and
// applied afterwards; if fn fails every claimed job goes back to the queue untouched.
func (s *Store) ClaimDue(ctx context.Context, now time.Time, limit int32, fn func(ctx context.Context, jobs []outbox.Job, b outbox.Batch) error) error {
	due, snapshot := s.claim(now, limit)

	b := &jobBatch{claimed: snapshot, staged: make(map[uuid.UUID]job)}
	keep := false
	defer func() { s.settle(due, b.staged, keep) }()

	claimed := make([]outbox.Job, 0, len(due))
	for _, j := range due {
		c := snapshot[j.id]
		claimed = append(claimed, outbox.Job{
			ID:       c.id,
			Kind:     c.kind,
			Topic:    c.topic,
			Payload:  append([]byte(nil), c.payload...),
			Attempts: c.attempts,
		})
	}
	if err := fn(ctx, claimed, b); err != nil {
		return err
	}
	keep = true
	return nil
}

func (s *Store) claim(now time.Time, limit int32) ([]*job, map[uuid.UUID]job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*job
	for _, j := range s.jobs {
		if j.status == statusQueued && !j.runAt.After(now) {
			due = append(due, j)
		}
	}
	sort.SliceStable(due, func(i, k int) bool { return due[i].runAt.Before(due[k].runAt) })
	if limit >= 0 && len(due) > int(limit) {
		due = due[:limit]
	}

	snapshot := make(map[uuid.UUID]job, len(due))
	for _, j := range due {
		snapshot[j.id] = *j
		j.status = statusSending
	}
	return due, snapshot
}

func (s *Store) settle(due []*job, staged map[uuid.UUID]job, keep bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range due {
		if outcome, ok := staged[j.id]; ok && keep {
			*j = outcome
			continue
		}
		j.status = statusQueued
	}
}

// Jobs returns a snapshot of every job, queued or not.
func (s *Store) Jobs() []outbox.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]outbox.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, outbox.Job{ID: j.id, Kind: j.kind, Topic: j.topic, Payload: j.payload, Attempts: j.attempts})
	}
	return out
}

// PendingJobs counts jobs not yet delivered or parked, including those being sent.
func (s *Store) PendingJobs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, j := range s.jobs {
		if j.status == statusQueued || j.status == statusSending {
			n++
		}
	}
	return n
}

type jobBatch struct {
	claimed map[uuid.UUID]job
	staged  map[uuid.UUID]job
}

func (b *jobBatch) current(id uuid.UUID) (job, error) {
	if j, ok := b.staged[id]; ok {
		return j, nil
	}
	j, ok := b.claimed[id]
	if !ok {
		return job{}, infra.NotFound("notification job not claimed")
	}
	return j, nil
}

func (b *jobBatch) MarkSent(_ context.Context, jobID uuid.UUID) error {
	j, err := b.current(jobID)
	if err != nil {
		return err
	}
	j.status = statusSent
	j.attempts++
	j.lastError = ""
	b.staged[jobID] = j
	return nil
}

func (b *jobBatch) MarkRetry(_ context.Context, jobID uuid.UUID, lastError string, nextRun time.Time, giveUp bool) error {
	j, err := b.current(jobID)
	if err != nil {
		return err
	}
	j.status = statusQueued
	if giveUp {
		j.status = statusFailed
	}
	j.attempts++
	j.lastError = lastError
	j.runAt = nextRun
	b.staged[jobID] = j
	return nil
}
