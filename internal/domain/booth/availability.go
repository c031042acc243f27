package booth

import "booth-reservation/internal/domain/daterange"

// ComputeAvailability derives the availability of a booth from the event period and the ranges of its active
// reservations. Ranges may overlap; they are treated as a set union.
func ComputeAvailability(event daterange.Range, active []daterange.Range) Availability {
	if len(active) == 0 {
		return Available
	}
	for _, m := range daterange.Merge(active) {
		if event.IsSubrangeOf(m) {
			return Unavailable
		}
	}
	return Reserved
}
