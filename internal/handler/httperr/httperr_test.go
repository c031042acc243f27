//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booth-reservation/internal/domain/daterange"
	"booth-reservation/internal/domain/reservation"
	"booth-reservation/internal/handler/httperr"
	"booth-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errs.Mark(errs.New("bad date"), errs.ErrValidation), http.StatusBadRequest},
		{"forbidden", errs.Mark(errs.New("renter"), errs.ErrForbidden), http.StatusForbidden},
		{"not found", errs.Mark(errs.New("booth"), errs.ErrNotFound), http.StatusNotFound},
		{"conflict", errs.Mark(errs.New("overlap"), errs.ErrConflict), http.StatusConflict},
		{"invalid transition", errs.Mark(errs.New("declined to approved"), errs.ErrInvalidTransition), http.StatusConflict},
		{"out of bounds", errs.Mark(errs.New("outside"), errs.ErrRangeOutOfBounds), http.StatusUnprocessableEntity},
		{"wrapped category survives", errs.Wrap(errs.Mark(errs.New("booth"), errs.ErrNotFound), "loading"), http.StatusNotFound},
		{"uncategorised", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}

var (
	errBoothNotFound   = errs.NewPublic("booth not found")
	errAlreadyReserved = errs.NewPublic("booth is already reserved")
)

func message(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	m, _ := e["message"].(string)
	return m
}

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.AbortWithUseCaseError(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestAbortWithUseCaseError(t *testing.T) {
	t.Run("conflict exposes the conflicting reservation", func(t *testing.T) {
		id := uuid.New()
		cause := &reservation.ConflictError{ReservationID: id, Period: daterange.MustParse("2025-10-01", "2025-10-02")}

		rec, body := render(t, errs.Mark(cause, errs.ErrConflict))

		assert.Equal(t, http.StatusConflict, rec.Code)
		detail, ok := body["detail"].(map[string]any)
		require.True(t, ok, "detail missing: %v", body)
		assert.Equal(t, id.String(), detail["conflictingReservationId"])
	})

	t.Run("client errors show the public sentinel only", func(t *testing.T) {
		boothID := uuid.New()
		err := errs.Mark(errs.Wrapf(errBoothNotFound, "booth %s", boothID), errs.ErrNotFound)

		rec, body := render(t, err)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "booth not found", message(body))
		assert.NotContains(t, rec.Body.String(), boothID.String())
		assert.NotContains(t, body, "detail")
	})

	t.Run("marked cause stays out of the message", func(t *testing.T) {
		cause := &reservation.ConflictError{ReservationID: uuid.New(), Period: daterange.MustParse("2025-10-01", "2025-10-02")}
		err := errs.Mark(errs.Mark(cause, errAlreadyReserved), errs.ErrConflict)

		_, body := render(t, err)

		assert.Equal(t, "booth is already reserved", message(body))
	})

	t.Run("non-public errors fall back to the category message", func(t *testing.T) {
		rec, body := render(t, errs.Mark(errs.New("pgx: row 42 missing"), errs.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not found", message(body))
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		rec, body := render(t, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", message(body))
	})
}
