package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sponsra/sponsra-app-sub000/internal/api"
	"github.com/Sponsra/sponsra-app-sub000/internal/config"
	"github.com/Sponsra/sponsra-app-sub000/internal/db"
	"github.com/Sponsra/sponsra-app-sub000/internal/model"
	"github.com/Sponsra/sponsra-app-sub000/internal/repository"
	"github.com/Sponsra/sponsra-app-sub000/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	gormDB, err := db.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	tierRepo := repository.NewGormTierRepository(gormDB)
	scheduleRepo := repository.NewGormScheduleRepository(gormDB)
	blackoutRepo := repository.NewGormBlackoutRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)

	availabilitySvc := service.NewAvailabilityService(tierRepo, scheduleRepo, blackoutRepo, bookingRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo)
	bookingSvc := service.NewBookingService(availabilitySvc, bookingRepo)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	server := api.NewServer(availabilitySvc, scheduleSvc, bookingSvc, logger)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.Router(),
	}

	go func() {
		log.Printf("sponsra scheduling core listening on %s", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
