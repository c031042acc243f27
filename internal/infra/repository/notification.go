package repository

import (
	"context"
	"time"

	"booth-reservation/internal/infra"
	sqlc "booth-reservation/internal/infra/sqlc/generated"
	"booth-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobRetryParams) error
}

type NotificationRepository struct {
	queries NotificationQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  JobStatusQueued,
	}

	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// Claim locks up to limit due jobs. Jobs already locked by another relay are skipped.
func (r *NotificationRepository) Claim(ctx context.Context, now time.Time, limit int32) ([]sqlc.NotificationJobs, error) {
	jobs, err := r.queries.ClaimNotificationJobs(ctx, r.db, sqlc.ClaimNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, jobID uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, r.db, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkRetry records a failed attempt. A job that has given up moves to failed and is no longer claimed.
func (r *NotificationRepository) MarkRetry(ctx context.Context, jobID uuid.UUID, lastError string, nextRun time.Time, giveUp bool) error {
	status := JobStatusQueued
	if giveUp {
		status = JobStatusFailed
	}
	err := r.queries.MarkNotificationJobRetry(ctx, r.db, sqlc.MarkNotificationJobRetryParams{
		ID:        jobID,
		Status:    status,
		LastError: pgtype.Text{String: lastError, Valid: true},
		RunAt:     pgconv.TimeToPgtype(nextRun),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record notification job failure", err)
	}
	return nil
}
