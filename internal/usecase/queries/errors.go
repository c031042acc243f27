package queries

import (
	"booth-reservation/internal/infra"
	"booth-reservation/internal/pkg/errs"
)

var (
	ErrEventNotFound       = errs.NewPublic("event not found")
	ErrBoothNotFound       = errs.NewPublic("booth not found")
	ErrReservationNotFound = errs.NewPublic("reservation not found")
)

// notFound translates a repository miss into sentinel marked as a not-found category. Other errors pass through.
func notFound(err, sentinel error, format string, args ...any) error {
	if !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	return errs.Mark(errs.Wrapf(sentinel, format, args...), errs.ErrNotFound)
}
