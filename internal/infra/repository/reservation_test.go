//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"booth-reservation/internal/domain/reservation"
	"booth-reservation/internal/infra"
	"booth-reservation/internal/infra/repository"
	sqlc "booth-reservation/internal/infra/sqlc/generated"
	"booth-reservation/tests/common/builder"
	repositorymock "booth-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationQueries, *reservation.Reservation, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation inserted with its period",
			setupMock: func(mock *repositorymock.MockReservationQueries, res *reservation.Reservation, db sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
						assert.Equal(t, res.ID(), arg.ID)
						assert.Equal(t, "pending", arg.Status)
						assert.Equal(t, int64(12000), arg.TotalPriceCents)
						assert.True(t, arg.Note.Valid)
						return nil
					})
			},
		},
		{
			name: "error: exclusion constraint reported as conflict",
			setupMock: func(mock *repositorymock.MockReservationQueries, _ *reservation.Reservation, db sqlc.DBTX) {
				excl := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(excl)
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: unknown booth reported as foreign key violation",
			setupMock: func(mock *repositorymock.MockReservationQueries, _ *reservation.Reservation, db sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: connection failure",
			setupMock: func(mock *repositorymock.MockReservationQueries, _ *reservation.Reservation, db sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().BuildDomain()
			tc.setupMock(mockQueries, res, mockDB)

			err := repo.Create(ctx, res)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReservationRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converted to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		b := builder.NewReservationBuilder()
		mockQueries.EXPECT().GetReservationByID(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)

		got, err := repo.FindByID(ctx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID())
		assert.Equal(t, b.Period(), got.Period())
		assert.Equal(t, reservation.StatusPending, got.Status())
		assert.Equal(t, b.Note, got.Note().String())
	})

	t.Run("error: missing row is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetReservationByID(ctx, mockDB, gomock.Any()).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, uuid.New())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: unknown status in row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		row := builder.NewReservationBuilder().BuildInfra()
		row.Status = "archived"
		mockQueries.EXPECT().GetReservationByID(ctx, mockDB, row.ID).Return(row, nil)

		_, err := repo.FindByID(ctx, row.ID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// ListByBoothID / UpdateStatus Tests
// =============================================================================

func TestReservationRepository_ListByBoothID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	boothID := uuid.New()
	first := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.BoothID = boothID })
	second := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.BoothID = boothID
		b.StartDate, b.EndDate = "2025-10-04", "2025-10-05"
		b.Status = reservation.StatusDeclined
		b.Note = ""
	})
	mockQueries.EXPECT().ListReservationsByBoothID(ctx, mockDB, boothID).
		Return([]sqlc.Reservations{first.BuildInfra(), second.BuildInfra()}, nil)

	got, err := repo.ListByBoothID(ctx, boothID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID())
	assert.Equal(t, reservation.StatusDeclined, got[1].Status())
	assert.True(t, got[1].Note().IsEmpty())
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", affected: 1},
		{name: "error: no row updated", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database failure", dbErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res := builder.NewReservationBuilder().BuildDomain()
			mockQueries.EXPECT().UpdateReservationStatus(ctx, mockDB, gomock.Any()).Return(tc.affected, tc.dbErr)

			err := repo.UpdateStatus(ctx, res)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

// =============================================================================
// Mock DBTX
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
