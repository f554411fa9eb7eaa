// README: Ride handlers for booking, listing and status changes.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campusride/internal/modules/ride"
)

type RideHandler struct {
	ride *ride.Service
}

func NewRideHandler(svc *ride.Service) *RideHandler {
	return &RideHandler{ride: svc}
}

type createRideReq struct {
	UserID         *string `json:"userId"`
	PickupLocation string  `json:"pickupLocation"`
	DropLocation   string  `json:"dropLocation"`
	Passengers     int     `json:"passengers"`
	RideType       string  `json:"rideType"`
	Fare           int64   `json:"fare"`
	ScheduledAt    *string `json:"scheduledAt"`
}

func (h *RideHandler) Create(c *gin.Context) {
	var req createRideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	var scheduledAt *time.Time
	if req.ScheduledAt != nil {
		t, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid scheduledAt")
			return
		}
		scheduledAt = &t
	}
	r, err := h.ride.Create(c.Request.Context(), ride.CreateCommand{
		UserID:         req.UserID,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		Passengers:     req.Passengers,
		RideType:       req.RideType,
		Fare:           req.Fare,
		ScheduledAt:    scheduledAt,
	})
	if err != nil {
		writeRideError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, r)
}

func (h *RideHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing ride id")
		return
	}
	r, err := h.ride.Get(c.Request.Context(), id)
	if err != nil {
		writeRideError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}

func (h *RideHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		rides []*ride.Ride
		err   error
	)
	switch {
	case c.Query("driverId") != "":
		rides, err = h.ride.ListByDriver(ctx, c.Query("driverId"))
	case c.Query("userId") != "":
		rides, err = h.ride.ListByUser(ctx, c.Query("userId"))
	default:
		rides, err = h.ride.List(ctx)
	}
	if err != nil {
		writeRideError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"rides": rides})
}

type updateRideStatusReq struct {
	Status   string `json:"status"`
	DriverID string `json:"driverId"`
}

// UpdateStatus applies a lifecycle transition. Accepting requires a driver
// id so the booking records who took it; every other transition leaves the
// assignment untouched.
func (h *RideHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing ride id")
		return
	}
	var req updateRideStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Status == "" {
		writeError(c, http.StatusBadRequest, "missing status")
		return
	}

	var (
		r   *ride.Ride
		err error
	)
	if req.Status == string(ride.StatusAccepted) {
		r, err = h.ride.Accept(c.Request.Context(), id, req.DriverID)
	} else {
		r, err = h.ride.SetStatus(c.Request.Context(), id, req.Status)
	}
	if err != nil {
		writeRideError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}
