package httperr

import (
	"log/slog"
	"net/http"

	"booth-reservation/internal/domain/reservation"
	"booth-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type ConflictDetail struct {
	ConflictingReservationID string `json:"conflictingReservationId"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var categories = []struct {
	err    error
	status int
	msg    string
}{
	{errs.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrConflict, http.StatusConflict, "Conflict"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Invalid status transition"},
	{errs.ErrRangeOutOfBounds, http.StatusUnprocessableEntity, "Dates out of range"},
}

// StatusOf maps an error category to its HTTP status. Uncategorised errors are infrastructure failures.
func StatusOf(err error) int {
	status, _ := classify(err)
	return status
}

func classify(err error) (int, string) {
	for _, c := range categories {
		if errs.Is(err, c.err) {
			return c.status, c.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUseCaseError renders a use-case failure. Clients see the public sentinel message or the
// category's fixed message; the full chain only goes to the request log.
func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg := classify(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		AbortWithError(c, status, err, msg, nil)
		return
	}

	if public, ok := errs.PublicMessage(err); ok {
		msg = public
	}
	var detail any
	var conflict *reservation.ConflictError
	if errs.As(err, &conflict) {
		detail = ConflictDetail{ConflictingReservationID: conflict.ReservationID.String()}
	}
	AbortWithError(c, status, err, msg, detail)
}
