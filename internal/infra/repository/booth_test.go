//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/infra"
	"booth-reservation/internal/infra/repository"
	sqlc "booth-reservation/internal/infra/sqlc/generated"
	"booth-reservation/tests/common/builder"
	repositorymock "booth-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBoothRepository_LockByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: locked row converted to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBoothQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBoothRepository(mockQueries, mockDB)

		b := builder.NewBoothBuilder().With(func(b *builder.BoothBuilder) {
			b.Availability = booth.Reserved
			b.Version = 7
		})
		mockQueries.EXPECT().LockBoothByID(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)

		got, err := repo.LockByID(ctx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID())
		assert.Equal(t, booth.Reserved, got.Availability())
		assert.EqualValues(t, 7, got.Version())
	})

	t.Run("error: missing booth is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBoothQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBoothRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockBoothByID(ctx, mockDB, gomock.Any()).Return(sqlc.Booths{}, pgx.ErrNoRows)

		_, err := repo.LockByID(ctx, uuid.New())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: unknown availability in row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBoothQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBoothRepository(mockQueries, mockDB)

		row := builder.NewBoothBuilder().BuildInfra()
		row.AvailabilityStatus = "sold-out"
		mockQueries.EXPECT().LockBoothByID(ctx, mockDB, row.ID).Return(row, nil)

		_, err := repo.LockByID(ctx, row.ID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBoothRepository_FindByID_UsesPlainRead(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBoothQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBoothRepository(mockQueries, mockDB)

	b := builder.NewBoothBuilder()
	mockQueries.EXPECT().GetBoothByID(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)
	mockQueries.EXPECT().LockBoothByID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := repo.FindByID(ctx, b.ID)

	require.NoError(t, err)
	assert.Equal(t, b.Name, got.Name())
}

func TestBoothRepository_UpdateAvailability(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		affected   int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: availability persisted", affected: 1},
		{name: "error: booth vanished", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database failure", dbErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBoothQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBoothRepository(mockQueries, mockDB)

			b := builder.NewBoothBuilder().With(func(b *builder.BoothBuilder) { b.Availability = booth.Unavailable }).BuildDomain()
			mockQueries.EXPECT().UpdateBoothAvailability(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBoothAvailabilityParams) (int64, error) {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, "unavailable", arg.AvailabilityStatus)
					assert.Equal(t, b.Version(), arg.AvailabilityVersion)
					return tc.affected, tc.dbErr
				})

			err := repo.UpdateAvailability(ctx, b)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
