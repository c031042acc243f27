package commands

import "booth-reservation/internal/pkg/errs"

var (
	ErrEventNotFound       = errs.NewPublic("event not found")
	ErrBoothNotFound       = errs.NewPublic("booth not found")
	ErrReservationNotFound = errs.NewPublic("reservation not found")

	ErrOutsideEvent        = errs.NewPublic("reservation dates fall outside the event")
	ErrReversedRange       = errs.NewPublic("start date is after end date")
	ErrReservationConflict = errs.NewPublic("booth is already reserved for these dates")
	ErrUnsupportedStatus   = errs.NewPublic("status can only be set to approved or declined")
	ErrTransitionRejected  = errs.NewPublic("reservation cannot move to the requested status")

	ErrInvalidInput = errs.NewPublic("invalid input")
	ErrNotPermitted = errs.NewPublic("not permitted")
)

// categoryOf maps each use-case sentinel to the category callers branch on.
var categoryOf = map[error]error{
	ErrEventNotFound:       errs.ErrNotFound,
	ErrBoothNotFound:       errs.ErrNotFound,
	ErrReservationNotFound: errs.ErrNotFound,
	ErrOutsideEvent:        errs.ErrRangeOutOfBounds,
	ErrReversedRange:       errs.ErrRangeOutOfBounds,
	ErrReservationConflict: errs.ErrConflict,
	ErrUnsupportedStatus:   errs.ErrInvalidTransition,
	ErrTransitionRejected:  errs.ErrInvalidTransition,
	ErrInvalidInput:        errs.ErrValidation,
	ErrNotPermitted:        errs.ErrForbidden,
}

// fail returns sentinel with context, marked with its category.
func fail(sentinel error, format string, args ...any) error {
	err := sentinel
	if format != "" {
		err = errs.Wrapf(sentinel, format, args...)
	}
	return errs.Mark(err, categoryOf[sentinel])
}

// failWith keeps cause reachable through errs.As while adding sentinel and its category.
func failWith(cause, sentinel error) error {
	return errs.Mark(errs.Mark(cause, sentinel), categoryOf[sentinel])
}
