// README: Driver handlers for registration, presence reports and nearby lookup.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusride/internal/modules/driver"
	"campusride/internal/types"
)

const defaultNearbyRadiusKm = 2.0

type DriverHandler struct {
	driver *driver.Service
}

func NewDriverHandler(svc *driver.Service) *DriverHandler {
	return &DriverHandler{driver: svc}
}

type createDriverReq struct {
	UserID     *string      `json:"userId"`
	DriverID   string       `json:"driverId"`
	Name       string       `json:"name"`
	Phone      string       `json:"phone"`
	AutoNumber string       `json:"autoNumber"`
	Rating     float64      `json:"rating"`
	Status     string       `json:"status"`
	Location   *types.Point `json:"location"`
}

func (h *DriverHandler) Create(c *gin.Context) {
	var req createDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	d, err := h.driver.Create(c.Request.Context(), driver.CreateCommand{
		UserID:     req.UserID,
		Code:       req.DriverID,
		Name:       req.Name,
		Phone:      req.Phone,
		AutoNumber: req.AutoNumber,
		Rating:     req.Rating,
		Status:     driver.Status(req.Status),
		Location:   req.Location,
	})
	if err != nil {
		writeDriverError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, d)
}

func (h *DriverHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing driver id")
		return
	}
	d, err := h.driver.Get(c.Request.Context(), id)
	if err != nil {
		writeDriverError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, d)
}

func (h *DriverHandler) List(c *gin.Context) {
	drivers, err := h.driver.List(c.Request.Context())
	if err != nil {
		writeDriverError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"drivers": drivers})
}

type updateDriverStatusReq struct {
	Status string `json:"status"`
}

func (h *DriverHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing driver id")
		return
	}
	var req updateDriverStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Status == "" {
		writeError(c, http.StatusBadRequest, "missing status")
		return
	}
	d, err := h.driver.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeDriverError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, d)
}

type updateDriverLocationReq struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// UpdateLocation stores a coordinate pair. Both members must be present;
// a report with only one axis is rejected rather than half-applied.
func (h *DriverHandler) UpdateLocation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing driver id")
		return
	}
	var req updateDriverLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Lat == nil || req.Lng == nil {
		writeError(c, http.StatusBadRequest, "missing lat/lng")
		return
	}
	d, err := h.driver.UpdateLocation(c.Request.Context(), id, types.Point{Lat: *req.Lat, Lng: *req.Lng})
	if err != nil {
		writeDriverError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, d)
}

func (h *DriverHandler) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid lat")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid lng")
		return
	}
	radiusKm := defaultNearbyRadiusKm
	if raw := c.Query("radiusKm"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			writeError(c, http.StatusBadRequest, "invalid radiusKm")
			return
		}
	}
	results, err := h.driver.Nearby(c.Request.Context(), types.Point{Lat: lat, Lng: lng}, radiusKm)
	if err != nil {
		writeDriverError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"drivers": results})
}
