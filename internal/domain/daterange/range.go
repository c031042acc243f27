package daterange

import (
	"errors"
	"iter"
	"slices"
)

var ErrInvalidRange = errors.New("start date must not be after end date")

// Range is an inclusive span of calendar days [start, end].
type Range struct {
	start Day
	end   Day
}

func New(start, end Day) (Range, error) {
	if start.IsZero() || end.IsZero() {
		return Range{}, ErrInvalidDate
	}
	if start.After(end) {
		return Range{}, ErrInvalidRange
	}
	return Range{start: start, end: end}, nil
}

// Parse builds a range from two ISO calendar dates.
func Parse(start, end string) (Range, error) {
	s, err := ParseDay(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseDay(end)
	if err != nil {
		return Range{}, err
	}
	return New(s, e)
}

func MustParse(start, end string) Range {
	r, err := Parse(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Range) Start() Day { return r.start }
func (r Range) End() Day   { return r.end }

// Len is the number of days in the range, both ends included.
func (r Range) Len() int {
	return r.start.DaysUntil(r.end) + 1
}

func (r Range) String() string {
	return r.start.String() + ".." + r.end.String()
}

// Expand yields every day of the range in ascending order. The sequence can be ranged over repeatedly.
func (r Range) Expand() iter.Seq[Day] {
	return func(yield func(Day) bool) {
		if r.start.IsZero() {
			return
		}
		for d := r.start; !d.After(r.end); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Overlaps reports whether both ranges claim at least one common day. Ranges that touch on a
// single boundary day overlap.
func (r Range) Overlaps(o Range) bool {
	return !r.start.After(o.end) && !o.start.After(r.end)
}

// IsSubrangeOf reports whether every day of r is also a day of outer.
func (r Range) IsSubrangeOf(outer Range) bool {
	return !r.start.Before(outer.start) && !r.end.After(outer.end)
}

func (r Range) Contains(d Day) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

// Merge returns the minimal set of ranges covering the same days as rs, sorted by start.
// Overlapping ranges and ranges separated by no gap (end+1 == next start) collapse into one.
func Merge(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	sorted := slices.Clone(rs)
	slices.SortFunc(sorted, func(a, b Range) int {
		return a.start.Compare(b.start)
	})

	merged := make([]Range, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if !next.start.After(cur.end.AddDays(1)) {
			if next.end.After(cur.end) {
				cur.end = next.end
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	return append(merged, cur)
}
