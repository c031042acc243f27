//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"booth-reservation/internal/infra/memory"
	"booth-reservation/internal/pkg/clock"
	"booth-reservation/internal/usecase/commands"
	"booth-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	eventStart = "2025-10-01"
	eventEnd   = "2025-10-05"
)

type fixture struct {
	store        *memory.Store
	clock        *clock.MockClock
	events       commands.EventCommands
	reservations commands.ReservationCommands

	organizer shared.Actor
	renter    shared.Actor
	eventID   uuid.UUID
	boothID   uuid.UUID
}

func newFixture(t *testing.T, cache shared.AvailabilityCache) *fixture {
	t.Helper()
	if cache == nil {
		cache = shared.NoopAvailabilityCache{}
	}

	store := memory.NewStore()
	clk := clock.NewMockClock(time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC))
	f := &fixture{
		store:        store,
		clock:        clk,
		events:       commands.NewEventUseCase(store, clk),
		reservations: commands.NewReservationUseCase(store, cache, clk),
		organizer:    shared.Actor{UserID: uuid.New(), Role: shared.RoleOrganizer},
		renter:       shared.Actor{UserID: uuid.New(), Role: shared.RoleRenter},
	}

	ctx := context.Background()
	var err error
	f.eventID, err = f.events.CreateEvent(ctx, commands.CreateEventInput{
		Name: "Autumn Craft Fair", StartDate: eventStart, EndDate: eventEnd,
	}, f.organizer)
	require.NoError(t, err)
	f.boothID, err = f.events.CreateBooth(ctx, commands.CreateBoothInput{EventID: f.eventID, Name: "A-1"}, f.organizer)
	require.NoError(t, err)
	return f
}

func (f *fixture) reserve(t *testing.T, start, end string) uuid.UUID {
	t.Helper()
	id, err := f.create(start, end)
	require.NoError(t, err)
	return id
}

func (f *fixture) create(start, end string) (uuid.UUID, error) {
	return f.reservations.CreateReservation(context.Background(), commands.CreateReservationInput{
		BoothID: f.boothID, StartDate: start, EndDate: end, TotalPrice: 12000,
	}, f.renter)
}

func (f *fixture) availability(t *testing.T) string {
	t.Helper()
	b, err := f.store.Reads().BoothByID(context.Background(), f.boothID)
	require.NoError(t, err)
	return b.Availability().String()
}
