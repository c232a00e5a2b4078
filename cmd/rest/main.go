package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bondify-be/internal/bootstrap"
	"bondify-be/internal/config"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/server"
	"bondify-be/internal/tracer"
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 2. Tracing (opt-in)
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Database, seeded on first start
	gormDB, err := bootstrap.OpenDatabase(ctx, cfg, sysLogger)
	if err != nil {
		log.Panicf("Unable to open database: %v", err)
	}

	// 4. Dependencies and background workers
	container := bootstrap.NewContainer(gormDB, cfg, sysLogger)
	if err := container.Start(ctx); err != nil {
		log.Panicf("Unable to start background services: %v", err)
	}
	defer container.Close()

	// 5. HTTP server
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		srv.Shutdown()
	}()

	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
