//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a single connection, or an open transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestEvent inserts an event spanning start..end (YYYY-MM-DD, inclusive).
func CreateTestEvent(t *testing.T, db DBLike, organizerID uuid.UUID, start, end string) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO events (id, name, start_date, end_date, organizer_id) VALUES ($1, $2, $3::date, $4::date, $5)",
		eventID, "Test Event "+eventID.String()[:8], start, end, organizerID)
	require.NoError(t, err)

	return eventID
}

func CreateTestBooth(t *testing.T, db DBLike, eventID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	boothID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO booths (id, event_id, name) VALUES ($1, $2, $3)",
		boothID, eventID, name)
	require.NoError(t, err)

	return boothID
}

// CreateTestReservation writes a reservation row directly, bypassing the booth lock and availability upkeep.
func CreateTestReservation(t *testing.T, db DBLike, boothID, renterID uuid.UUID, start, end, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, booth_id, renter_id, start_date, end_date, status, total_price_cents)
		 VALUES ($1, $2, $3, $4::date, $5::date, $6, 0)`,
		reservationID, boothID, renterID, start, end, status)
	require.NoError(t, err)

	return reservationID
}

func BoothAvailability(t *testing.T, db DBLike, boothID uuid.UUID) string {
	t.Helper()

	var availability string
	err := db.QueryRow(context.Background(),
		"SELECT availability_status FROM booths WHERE id = $1", boothID).Scan(&availability)
	require.NoError(t, err)

	return availability
}

func CountActiveReservations(t *testing.T, db DBLike, boothID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE booth_id = $1 AND status IN ('pending', 'approved')", boothID).Scan(&n)
	require.NoError(t, err)

	return n
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)

	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
