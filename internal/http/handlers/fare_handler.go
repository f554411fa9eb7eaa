// README: Fare estimate handler.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"campusride/internal/modules/fare"
)

type FareHandler struct {
	fare *fare.Service
}

func NewFareHandler(svc *fare.Service) *FareHandler {
	return &FareHandler{fare: svc}
}

// Estimate quotes a trip. Estimation is pure: it never touches storage and
// the same inputs always produce the same quote.
func (h *FareHandler) Estimate(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "missing origin or destination")
		return
	}

	passengers := 1
	if raw := c.Query("passengers"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(c, http.StatusBadRequest, "invalid passengers")
			return
		}
		passengers = n
	}

	var scheduledAt *time.Time
	if raw := c.Query("scheduledAt"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid scheduledAt")
			return
		}
		scheduledAt = &t
	}

	estimate := h.fare.Calculate(origin, destination, passengers, scheduledAt)
	writeJSON(c, http.StatusOK, estimate)
}
