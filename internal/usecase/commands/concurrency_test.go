//go:build unit

package commands_test

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"booth-reservation/internal/domain/booth"
	"booth-reservation/internal/domain/daterange"
	"booth-reservation/internal/domain/reservation"
	"booth-reservation/internal/pkg/errs"
	"booth-reservation/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation_ConcurrentOverlapsAdmitOne(t *testing.T) {
	f := newFixture(t, nil)

	const callers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// every candidate shares 2025-10-03
			start := []string{"2025-10-01", "2025-10-02", "2025-10-03"}[i%3]
			end := []string{"2025-10-03", "2025-10-04", "2025-10-05"}[i%3]
			_, err := f.create(start, end)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, errs.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, conflicts)
	assertInvariants(t, f)
}

func TestCreateReservation_ParallelBoothsAreIndependent(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	boothIDs := []uuid.UUID{f.boothID}
	for range 3 {
		id, err := f.events.CreateBooth(ctx, commands.CreateBoothInput{EventID: f.eventID, Name: "extra"}, f.organizer)
		require.NoError(t, err)
		boothIDs = append(boothIDs, id)
	}

	var wg sync.WaitGroup
	for _, id := range boothIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.reservations.CreateReservation(ctx, commands.CreateReservationInput{
				BoothID: id, StartDate: eventStart, EndDate: eventEnd,
			}, f.renter)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for _, id := range boothIDs {
		b, err := f.store.Reads().BoothByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booth.Unavailable, b.Availability())
	}
}

// Random operations must never break the no-overlap rule or leave a stale availability.
func TestReservationLifecycle_RandomOperationsKeepInvariants(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(7, 11))
	first := daterange.MustParse(eventStart, eventStart).Start()

	var ids []uuid.UUID
	for range 300 {
		switch op := rng.IntN(4); {
		case op == 0 || len(ids) == 0:
			s := rng.IntN(7) - 1 // sometimes outside the event
			e := s + rng.IntN(3)
			id, err := f.create(first.AddDays(s).String(), first.AddDays(e).String())
			if err == nil {
				ids = append(ids, id)
			} else {
				require.True(t, errs.Is(err, errs.ErrConflict) || errs.Is(err, errs.ErrRangeOutOfBounds), "got %v", err)
			}
		case op == 1:
			_ = f.reservations.UpdateStatus(ctx, ids[rng.IntN(len(ids))], "approved", f.organizer)
		case op == 2:
			_ = f.reservations.UpdateStatus(ctx, ids[rng.IntN(len(ids))], "declined", f.organizer)
		default:
			_ = f.reservations.CancelReservation(ctx, ids[rng.IntN(len(ids))], f.renter)
		}
		assertInvariants(t, f)
	}
}

func assertInvariants(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()

	rs, err := f.store.Reads().ReservationsByBoothID(ctx, f.boothID)
	require.NoError(t, err)
	var active []*reservation.Reservation
	for _, r := range rs {
		if r.IsActive() {
			active = append(active, r)
		}
	}
	for i := range active {
		for j := i + 1; j < len(active); j++ {
			require.False(t, active[i].Period().Overlaps(active[j].Period()),
				"%s overlaps %s", active[i].Period(), active[j].Period())
		}
	}

	ev, err := f.store.Reads().EventByID(ctx, f.eventID)
	require.NoError(t, err)
	b, err := f.store.Reads().BoothByID(ctx, f.boothID)
	require.NoError(t, err)
	want := booth.ComputeAvailability(ev.Period(), reservation.ActivePeriods(rs))
	require.Equal(t, want, b.Availability())
}
