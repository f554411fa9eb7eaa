// README: Analytics summary handler; aggregates over current stores.
package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campusride/internal/modules/driver"
	"campusride/internal/modules/ride"
	"campusride/internal/types"
)

type AnalyticsHandler struct {
	ride     *ride.Service
	driver   *driver.Service
	currency string
}

func NewAnalyticsHandler(rideSvc *ride.Service, driverSvc *driver.Service, currency string) *AnalyticsHandler {
	return &AnalyticsHandler{ride: rideSvc, driver: driverSvc, currency: currency}
}

type analyticsSummary struct {
	ActiveStudents int         `json:"activeStudents"`
	ActiveDrivers  int         `json:"activeDrivers"`
	TotalRides     int         `json:"totalRides"`
	DailyRides     int         `json:"dailyRides"`
	TotalRevenue   types.Money `json:"totalRevenue"`
	AvgRating      float64     `json:"avgRating"`
}

// Summary recomputes the aggregates on every call. Volumes here are campus
// scale, so a full scan per request is fine.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	rides, err := h.ride.List(ctx)
	if err != nil {
		writeRideError(c, err)
		return
	}
	drivers, err := h.driver.List(ctx)
	if err != nil {
		writeDriverError(c, err)
		return
	}

	summary := analyticsSummary{TotalRides: len(rides)}

	riders := make(map[string]bool)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	var revenue int64
	for _, r := range rides {
		if r.UserID != nil {
			riders[*r.UserID] = true
		}
		if !r.CreatedAt.UTC().Truncate(24 * time.Hour).Before(today) {
			summary.DailyRides++
		}
		revenue += r.Fare
	}
	summary.ActiveStudents = len(riders)

	var ratingSum float64
	var rated int
	for _, d := range drivers {
		if d.Status != driver.StatusOffline {
			summary.ActiveDrivers++
		}
		if d.Rating > 0 {
			ratingSum += d.Rating
			rated++
		}
	}
	if rated > 0 {
		summary.AvgRating = math.Round(ratingSum/float64(rated)*10) / 10
	}

	summary.TotalRevenue = types.Money{Amount: revenue, Currency: h.currency}

	writeJSON(c, http.StatusOK, summary)
}
