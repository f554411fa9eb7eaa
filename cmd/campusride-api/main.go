// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"campusride/internal/config"
	httptransport "campusride/internal/http"
	"campusride/internal/http/ws"
	"campusride/internal/infra"
	"campusride/internal/logger"
	"campusride/internal/modules/distance"
	"campusride/internal/modules/driver"
	"campusride/internal/modules/fare"
	"campusride/internal/modules/feedback"
	"campusride/internal/modules/ride"
	"campusride/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log := logger.New(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		rideStore     ride.Store
		driverStore   driver.Store
		feedbackStore feedback.Store
	)
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.WithError(err).Fatal("database connect failed")
		}
		defer dbPool.Close()
		rideStore = ride.NewPostgresStore(dbPool)
		driverStore = driver.NewPostgresStore(dbPool)
		feedbackStore = feedback.NewPostgresStore(dbPool)
		log.Info("using postgres stores")
	} else {
		rideStore = ride.NewMemoryStore()
		driverStore = driver.NewMemoryStore()
		feedbackStore = feedback.NewMemoryStore()
		log.Info("no database configured, using in-memory stores")
	}

	var geo driver.GeoIndex
	if cfg.Redis.Addr != "" {
		geo = driver.NewRedisGeo(infra.NewRedis(cfg.Redis.Addr))
		log.Info("using redis geo index")
	} else {
		geo = driver.NewMemoryGeo()
	}

	resolver := distance.NewResolver()
	fareSvc := fare.NewService(cfg.Fare, resolver)
	rideSvc := ride.NewService(rideStore)
	driverSvc := driver.NewService(driverStore, geo, log)
	feedbackSvc := feedback.NewService(feedbackStore)

	hub := ws.NewHub(log)
	driverSvc.SetPublisher(hub)

	if cfg.DB.DSN == "" {
		seedDemoDrivers(ctx, driverSvc, log)
	}

	srv := httptransport.NewServer(httptransport.ServerDeps{
		Distance: resolver,
		Fare:     fareSvc,
		Ride:     rideSvc,
		Driver:   driverSvc,
		Feedback: feedbackSvc,
		Hub:      hub,
		Currency: cfg.Fare.Currency,
		Log:      log,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: srv.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", cfg.HTTP.Addr).Info("campusride api listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// seedDemoDrivers fills the fresh in-memory store with the demo fleet so the
// nearby/tracking endpoints have something to show on first boot.
func seedDemoDrivers(ctx context.Context, svc *driver.Service, log *logrus.Logger) {
	for _, cmd := range demoDrivers() {
		if _, err := svc.Create(ctx, cmd); err != nil {
			log.WithError(err).WithField("driverId", cmd.Code).Warn("seed driver failed")
		}
	}
}

func demoDrivers() []driver.CreateCommand {
	return []driver.CreateCommand{
		{
			Code:       "A101",
			Name:       "John Kamau",
			Phone:      "+256 123 456 789",
			AutoNumber: "A101",
			Rating:     4.8,
			Status:     driver.StatusAvailable,
			Location:   &types.Point{Lat: 0.6103, Lng: 30.6463},
		},
		{
			Code:       "A205",
			Name:       "Sarah Mugisha",
			Phone:      "+256 123 456 790",
			AutoNumber: "A205",
			Rating:     4.9,
			Status:     driver.StatusAvailable,
			Location:   &types.Point{Lat: 0.6123, Lng: 30.6453},
		},
		{
			Code:       "A089",
			Name:       "Mike Rwomushana",
			Phone:      "+256 123 456 791",
			AutoNumber: "A089",
			Rating:     4.7,
			Status:     driver.StatusOnRide,
			Location:   &types.Point{Lat: 0.6143, Lng: 30.6483},
		},
	}
}
