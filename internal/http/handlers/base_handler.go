// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusride/internal/modules/driver"
	"campusride/internal/modules/feedback"
	"campusride/internal/modules/ride"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeRideError(c *gin.Context, err error) {
	switch err {
	case ride.ErrBadRequest, ride.ErrUnknownStatus:
		writeError(c, http.StatusBadRequest, err.Error())
	case ride.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case ride.ErrInvalidTransition:
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeDriverError(c *gin.Context, err error) {
	switch err {
	case driver.ErrBadRequest, driver.ErrUnknownStatus:
		writeError(c, http.StatusBadRequest, err.Error())
	case driver.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case driver.ErrCodeTaken:
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeFeedbackError(c *gin.Context, err error) {
	switch err {
	case feedback.ErrBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
