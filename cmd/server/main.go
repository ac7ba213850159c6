package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/config"
	"github.com/smartcity/castation/internal/dcc"
	"github.com/smartcity/castation/internal/delivery/http"
	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/host"
	"github.com/smartcity/castation/internal/its"
	"github.com/smartcity/castation/internal/metrics"
	"github.com/smartcity/castation/internal/repository/memory"
	"github.com/smartcity/castation/internal/repository/postgres"
	"github.com/smartcity/castation/internal/repository/sqlite"
	"github.com/smartcity/castation/internal/service"
	"github.com/smartcity/castation/internal/transport"
)

func main() {
	// Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("Station %d starting (%s, store=%s, dcc=%s)", cfg.StationID, cfg.Env, cfg.StoreDriver, cfg.DCCMode)

	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil {
				log.Printf("Warning: close failed: %v", err)
			}
		}
	}()

	// Dependency Injection: Neighbor store
	repo, closer := openStore(cfg)
	if closer != nil {
		closers = append(closers, closer)
	}

	// Dependency Injection: Station inputs
	clock := its.NewClock(nil)
	vehicleSvc, err := service.NewVehicleService(cfg.StationID, cfg.Profile.Vehicle, clock)
	if err != nil {
		log.Fatalf("Invalid vehicle start state: %v", err)
	}
	if cfg.Profile.Motion != nil {
		if err := vehicleSvc.Simulate(cfg.Profile.Motion); err != nil {
			log.Fatalf("Invalid vehicle motion: %v", err)
		}
		log.Printf("Simulating vehicle towards %.1f m/s", cfg.Profile.Motion.TargetSpeed)
	}

	var (
		congestion dcc.Scheduler
		channel    *dcc.Reactive
	)
	if cfg.DCCMode == config.DCCReactive {
		channel = dcc.NewReactive()
		congestion = channel
	} else {
		congestion = dcc.NewStatic(cfg.DCCDelay)
	}

	// Dependency Injection: Transport
	var (
		requester transport.Requester
		natsT     *transport.NATS
	)
	if cfg.NATSURL != "" {
		nc, err := transport.Connect(cfg.NATSURL, cfg.StationID)
		if err != nil {
			log.Fatalf("Transport error: %v", err)
		}
		natsT = transport.NewNATS(nc, cfg.StationID)
		closers = append(closers, natsT)
		requester = natsT
		log.Printf("Connected to NATS at %s", cfg.NATSURL)
	} else {
		loop := transport.NewLoopback(cfg.StationID)
		closers = append(closers, loop)
		requester = loop
		log.Println("No NATS_URL set, CAMs stay on the loopback transport")
	}
	if channel != nil {
		requester = dcc.NewGatekeeper(requester, channel)
	}

	// Dependency Injection: Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewPrometheus(registry)

	// Dependency Injection: Services
	builderCfg, err := cfg.Profile.Station.BuilderConfig()
	if err != nil {
		log.Fatalf("Invalid station profile: %v", err)
	}
	validator := cam.NewValidator()
	scheduler, err := service.NewGenerationScheduler(cfg.Profile.Generation)
	if err != nil {
		log.Fatalf("Invalid generation parameters: %v", err)
	}
	caSvc, err := service.NewCaService(service.CaDependencies{
		Source:    vehicleSvc,
		DCC:       congestion,
		Builder:   cam.NewBuilder(builderCfg, validator),
		Transport: requester,
		Metrics:   recorder,
		Scheduler: scheduler,
	})
	if err != nil {
		log.Fatalf("Failed to create CA service: %v", err)
	}
	reception := service.NewReceptionHandler(validator, repo, recorder)

	// Host dispatcher
	runner, err := host.NewRunner(caSvc, reception, vehicleSvc, host.Config{TickInterval: cfg.TickInterval})
	if err != nil {
		log.Fatalf("Failed to create host runner: %v", err)
	}
	if natsT != nil {
		if _, err := natsT.Subscribe(transport.PortCAM, func(ind transport.Indication) {
			if err := runner.Deliver(ind); err != nil {
				log.Printf("Warning: dropping CAM from station %d: %v", ind.SourceStation, err)
			}
		}); err != nil {
			log.Fatalf("Transport error: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := runner.Start(ctx); err != nil {
		log.Fatalf("Failed to start host runner: %v", err)
	}

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "CA Station v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Btp-Port",
	}))

	// Routes
	handler := http.NewHandler(caSvc, reception, vehicleSvc, repo, channel, runner)
	http.SetupRoutes(app, handler, registry)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down station...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	runner.Stop()
	log.Printf("Station exited gracefully after %d ticks", runner.Ticks())
}

type closeFunc func()

func (f closeFunc) Close() error {
	f()
	return nil
}

// openStore connects the configured neighbor store. A Postgres store that
// cannot be reached falls back to memory so the station keeps running.
func openStore(cfg *config.Config) (domain.AwarenessRepository, io.Closer) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			err = pool.Ping(ctx)
			if err != nil {
				pool.Close()
			}
		}
		if err != nil {
			log.Printf("Warning: Could not connect to database: %v", err)
			log.Println("Keeping neighbors in memory only")
			break
		}

		repo := postgres.NewPostgresRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			log.Fatalf("Database error: %v", err)
		}
		log.Println("Connected to PostgreSQL")
		return repo, closeFunc(pool.Close)

	case config.StoreSQLite:
		repo, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("Database error: %v", err)
		}
		log.Printf("Using SQLite neighbor store at %s", cfg.SQLitePath)
		return repo, repo
	}

	repo, err := memory.NewRepository(cfg.Profile.NeighborCapacity)
	if err != nil {
		log.Fatalf("Failed to create neighbor table: %v", err)
	}
	return repo, nil
}
