// README: Campus location listing handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusride/internal/modules/distance"
)

type LocationHandler struct {
	distance *distance.Resolver
}

func NewLocationHandler(resolver *distance.Resolver) *LocationHandler {
	return &LocationHandler{distance: resolver}
}

func (h *LocationHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{"locations": h.distance.Locations()})
}
