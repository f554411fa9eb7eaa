// README: Seeds the demo driver fleet into a configured postgres database.
package main

import (
	"context"
	"time"

	"campusride/internal/config"
	"campusride/internal/infra"
	"campusride/internal/logger"
	"campusride/internal/modules/driver"
	"campusride/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.Log.Level)
	if cfg.DB.DSN == "" {
		log.Fatal("CAMPUSRIDE_DB_DSN is required for seeding")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.WithError(err).Fatal("database connect failed")
	}
	defer dbPool.Close()

	// Geo sync is skipped here on purpose; the index rebuilds from the first
	// live presence report after boot.
	svc := driver.NewService(driver.NewPostgresStore(dbPool), driver.NewMemoryGeo(), log)

	for _, cmd := range fleet() {
		d, err := svc.Create(ctx, cmd)
		if err == driver.ErrCodeTaken {
			log.WithField("driverId", cmd.Code).Info("driver already seeded, skipping")
			continue
		}
		if err != nil {
			log.WithError(err).WithField("driverId", cmd.Code).Fatal("seed failed")
		}
		log.WithField("driverId", d.Code).Info("seeded driver")
	}
}

func fleet() []driver.CreateCommand {
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
