package repository

import (
	"context"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/infra"
	"booth-reservation/internal/infra/repository/converter"
	sqlc "booth-reservation/internal/infra/sqlc/generated"
	"booth-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BoothQueries interface {
	CreateBooth(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBoothParams) error
	GetBoothByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booths, error)
	LockBoothByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booths, error)
	ListBoothsByEventID(ctx context.Context, db sqlc.DBTX, eventID uuid.UUID) ([]sqlc.Booths, error)
	UpdateBoothAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBoothAvailabilityParams) (int64, error)
}

type BoothRepository struct {
	queries BoothQueries
	db      sqlc.DBTX
}

func NewBoothRepository(queries BoothQueries, db sqlc.DBTX) *BoothRepository {
	return &BoothRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BoothRepository) Create(ctx context.Context, b *booth.Booth) error {
	if err := r.queries.CreateBooth(ctx, r.db, converter.BoothToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create booth", err)
	}
	return nil
}

func (r *BoothRepository) FindByID(ctx context.Context, id uuid.UUID) (*booth.Booth, error) {
	return r.find(ctx, id, r.queries.GetBoothByID)
}

// LockByID takes a row lock on the booth. The lock is released when the surrounding transaction ends.
func (r *BoothRepository) LockByID(ctx context.Context, id uuid.UUID) (*booth.Booth, error) {
	return r.find(ctx, id, r.queries.LockBoothByID)
}

func (r *BoothRepository) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*booth.Booth, error) {
	rows, err := r.queries.ListBoothsByEventID(ctx, r.db, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booths by event", err)
	}
	out := make([]*booth.Booth, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BoothToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booth", err, infra.KindDBFailure)
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *BoothRepository) UpdateAvailability(ctx context.Context, b *booth.Booth) error {
	n, err := r.queries.UpdateBoothAvailability(ctx, r.db, sqlc.UpdateBoothAvailabilityParams{
		ID:                  b.ID(),
		AvailabilityStatus:  b.Availability().String(),
		AvailabilityVersion: b.Version(),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booth availability", err)
	}
	if n == 0 {
		return infra.NotFound("booth not found")
	}
	return nil
}

type boothLookup func(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Booths, error)

func (r *BoothRepository) find(ctx context.Context, id uuid.UUID, lookup boothLookup) (*booth.Booth, error) {
	row, err := lookup(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booth not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booth by ID", err)
	}
	b, err := converter.BoothToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booth", err, infra.KindDBFailure)
	}
	return b, nil
}
