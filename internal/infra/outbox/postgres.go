package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booth-reservation/internal/infra"
	"booth-reservation/internal/infra/repository"

	"github.com/jackc/pgx/v5"
)

type txStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PostgresStore claims jobs with FOR UPDATE SKIP LOCKED, so relays on several instances split the queue.
type PostgresStore struct {
	db      txStarter
	queries repository.NotificationQueries
}

func NewPostgresStore(db txStarter, queries repository.NotificationQueries) *PostgresStore {
	return &PostgresStore{db: db, queries: queries}
}

func (s *PostgresStore) ClaimDue(ctx context.Context, now time.Time, limit int32, fn func(ctx context.Context, jobs []Job, b Batch) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin outbox transaction", err, infra.KindDBFailure)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("outbox rollback failed", "error", rbErr.Error())
		}
	}()

	repo := repository.NewNotificationRepository(s.queries, tx)
	rows, err := repo.Claim(ctx, now, limit)
	if err != nil {
		return err
	}

	jobs := make([]Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, Job{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		})
	}

	if err := fn(ctx, jobs, repo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit outbox transaction", err, infra.KindDBFailure)
	}
	return nil
}
