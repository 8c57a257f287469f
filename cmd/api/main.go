package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anjiri1684/course_hours/app"
	config "github.com/anjiri1684/course_hours/configs"
	"github.com/anjiri1684/course_hours/database"
	"github.com/anjiri1684/course_hours/jobs"
	"github.com/anjiri1684/course_hours/logger"
)

func main() {
	cfg := config.Load()

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("🔥 Failed to init logger: %v", err)
	}
	defer logg.Sync()
	logger.SetDefault(logg)

	if err := database.ConnectDB(cfg); err != nil {
		logg.Fatal("failed to connect to database", "error", err)
	}
	if err := database.Migrate(database.DB); err != nil {
		logg.Fatal("failed to migrate database", "error", err)
	}
	logg.Info("database migration successful")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := jobs.Schedule(cfg.ExpiryCron, database.DB, logg)
	if err != nil {
		logg.Fatal("failed to schedule expiry job", "spec", cfg.ExpiryCron, "error", err)
	}
	c.Start()
	defer c.Stop()
	logg.Info("expired assignment report scheduled", "spec", cfg.ExpiryCron)

	server, hub := app.New(cfg, database.DB, logg)
	go hub.Run(ctx)

	go func() {
		<-ctx.Done()
		logg.Info("shutting down")
		if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
			logg.Error("shutdown failed", "error", err)
		}
	}()

	logg.Info("server is running", "port", cfg.Port)
	if err := server.Listen(":" + cfg.Port); err != nil {
		logg.Fatal("server failed to start", "error", err)
	}
}
