package api

import (
	"net/http"

	resdto "booth-reservation/internal/handler/dto/response"
	"booth-reservation/internal/handler/httperr"
	"booth-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BoothHandler struct {
	q queries.BoothQueries
}

func NewBoothHandler(q queries.BoothQueries) *BoothHandler {
	return &BoothHandler{q: q}
}

// @Summary Get booth availability
// @Description available, reserved (some event days taken) or unavailable (every event day taken)
// @Tags booths
// @Produce json
// @Param id path string true "Booth ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booths/{id}/availability [get]
func (h *BoothHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetAvailability(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary List booth reservations
// @Description Every reservation of the booth in any status, ordered by start date
// @Tags booths
// @Produce json
// @Param id path string true "Booth ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booths/{id}/reservations [get]
func (h *BoothHandler) Reservations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListReservations(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	resp, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
