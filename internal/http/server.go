// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campusride/internal/http/handlers"
	"campusride/internal/http/middleware"
	"campusride/internal/http/ws"
	"campusride/internal/modules/distance"
	"campusride/internal/modules/driver"
	"campusride/internal/modules/fare"
	"campusride/internal/modules/feedback"
	"campusride/internal/modules/ride"
)

type ServerDeps struct {
	Distance *distance.Resolver
	Fare     *fare.Service
	Ride     *ride.Service
	Driver   *driver.Service
	Feedback *feedback.Service
	Hub      *ws.Hub
	Currency string
	Log      *logrus.Logger
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(s.deps.Log), middleware.Logging(s.deps.Log))

	fareHandler := handlers.NewFareHandler(s.deps.Fare)
	r.GET("/api/fare/estimate", fareHandler.Estimate)

	locationHandler := handlers.NewLocationHandler(s.deps.Distance)
	r.GET("/api/locations", locationHandler.List)

	rideHandler := handlers.NewRideHandler(s.deps.Ride)
	r.POST("/api/rides", rideHandler.Create)
	r.GET("/api/rides", rideHandler.List)
	r.GET("/api/rides/:id", rideHandler.Get)
	r.PATCH("/api/rides/:id/status", rideHandler.UpdateStatus)

	driverHandler := handlers.NewDriverHandler(s.deps.Driver)
	r.POST("/api/drivers", driverHandler.Create)
	r.GET("/api/drivers", driverHandler.List)
	r.GET("/api/drivers/nearby", driverHandler.Nearby)
	r.GET("/api/drivers/:id", driverHandler.Get)
	r.PATCH("/api/drivers/:id/status", driverHandler.UpdateStatus)
	r.PATCH("/api/drivers/:id/location", driverHandler.UpdateLocation)

	feedbackHandler := handlers.NewFeedbackHandler(s.deps.Feedback)
	r.POST("/api/feedback", feedbackHandler.Create)
	r.GET("/api/feedback", feedbackHandler.List)

	analyticsHandler := handlers.NewAnalyticsHandler(s.deps.Ride, s.deps.Driver, s.deps.Currency)
	r.GET("/api/analytics", analyticsHandler.Summary)

	if s.deps.Hub != nil {
		r.GET("/ws/track", s.deps.Hub.Handle)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
