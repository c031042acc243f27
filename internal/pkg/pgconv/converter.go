package pgconv

import (
	"errors"
	"time"

	"booth-reservation/internal/domain/daterange"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidDate = errors.New("invalid date in pgtype.Date")

func DayToPgtype(d daterange.Day) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: d.Time(), Valid: true}
}

// DayFromPgtype rejects NULL and infinite dates.
func DayFromPgtype(pd pgtype.Date) (daterange.Day, error) {
	if !pd.Valid || pd.InfinityModifier != pgtype.Finite {
		return daterange.Day{}, ErrInvalidDate
	}
	return daterange.DayOf(pd.Time), nil
}

func RangeFromPgtype(start, end pgtype.Date) (daterange.Range, error) {
	s, err := DayFromPgtype(start)
	if err != nil {
		return daterange.Range{}, err
	}
	e, err := DayFromPgtype(end)
	if err != nil {
		return daterange.Range{}, err
	}
	return daterange.New(s, e)
}

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func OptionalStringToPgtype(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
