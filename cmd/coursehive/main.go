package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coursehive-lab/coursehive/internal/access"
	"github.com/coursehive-lab/coursehive/internal/auth"
	corecfg "github.com/coursehive-lab/coursehive/internal/core/config"
	"github.com/coursehive-lab/coursehive/internal/core/storage"
	"github.com/coursehive-lab/coursehive/internal/core/storage/memory"
	"github.com/coursehive-lab/coursehive/internal/core/storage/postgres"
	"github.com/coursehive-lab/coursehive/internal/enrollment"
	"github.com/coursehive-lab/coursehive/internal/migrations"
	"github.com/coursehive-lab/coursehive/internal/rating"
	"github.com/coursehive-lab/coursehive/internal/reconcile"
	"github.com/coursehive-lab/coursehive/internal/server"
	"github.com/coursehive-lab/coursehive/internal/stats"
	"github.com/coursehive-lab/coursehive/internal/viewing"
	"golang.org/x/sync/errgroup"
)

// stores bundles the storage ports one backend provides.
type stores struct {
	catalog     storage.CatalogStore
	enrollments storage.EnrollmentStore
	views       storage.ViewStore
	ratings     storage.RatingStore
	stats       storage.StatsStore
	reconciler  storage.Reconciler
	health      server.HealthChecker
	close       func() error
}

func main() {
	configPath := flag.String("config", "coursehive.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"addr", cfg.Server.Addr(),
		"database", cfg.Database.Type,
		"access_policies", cfg.Policies.ContributionIDs(),
		"default_requires_enrollment", cfg.Access.DefaultRequiresEnrollment,
	)

	// 2. Initialize Storage
	st, err := openStores(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer st.close() //nolint:errcheck

	// 3. Access rules read the catalog through a short-lived cache; counters never do.
	cachedCatalog := storage.NewCachedCatalog(st.catalog, cfg.Catalog.CacheSize, cfg.Catalog.TTL())
	decider := access.NewDecider(cfg.Policies, cfg.Access.DefaultRequiresEnrollment)

	// 4. Initialize Services
	enrollmentSvc := enrollment.NewService(st.catalog, st.enrollments)
	viewingSvc := viewing.NewService(cachedCatalog, enrollmentSvc, st.views, decider)
	ratingSvc := rating.NewService(st.ratings)
	statsSvc := stats.NewService(st.stats)

	verifier, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		slog.Error("Failed to initialize auth", "error", err)
		os.Exit(1)
	}

	// 5. Initialize Server
	srv := server.New(cfg.Server.Addr(), st.health, cfg.Server.Mode, int64(cfg.Server.MaxBodySizeKB)*1024)

	api := srv.Engine.Group("/")
	var limiter *server.RateLimiter
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter = server.NewRateLimiter(cfg.Server.RateLimitPerMinute)
		api.Use(limiter.Middleware())
	}
	api.Use(auth.Middleware(verifier))

	enrollmentSvc.RegisterRoutes(api)
	viewingSvc.RegisterRoutes(api)
	ratingSvc.RegisterRoutes(api)
	statsSvc.RegisterRoutes(api)

	// 6. Start Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Reconcile.Enabled {
		scheduler := reconcile.NewScheduler(cfg.Reconcile.IntervalDuration(), st.reconciler)
		g.Go(func() error { return scheduler.Start(gctx) })
	} else {
		slog.Info("Reconciler disabled by config")
	}

	if limiter != nil {
		g.Go(func() error {
			limiter.RunCleanup(gctx, 5*time.Minute)
			return nil
		})
	}

	// HTTP server blocks until the context is cancelled.
	g.Go(func() error { return srv.Run(gctx) })

	if err := g.Wait(); err != nil {
		slog.Error("Service stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func openStores(cfg corecfg.DatabaseConfig) (*stores, error) {
	if cfg.Type == "memory" {
		store := memory.NewStore()
		if cfg.SeedFile != "" {
			n, err := store.LoadCatalogFile(cfg.SeedFile)
			if err != nil {
				return nil, err
			}
			slog.Info("Seeded in-memory catalog", "contributions", n, "file", cfg.SeedFile)
		}
		slog.Warn("Using in-memory storage; all facts are lost on restart")
		return &stores{
			catalog:     store,
			enrollments: store,
			views:       store,
			ratings:     store,
			stats:       store,
			reconciler:  store,
			close:       func() error { return nil },
		}, nil
	}

	dbAdapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, err
	}

	if err := migrations.Run(dbAdapter.DB(), cfg.AutoMigrate); err != nil {
		dbAdapter.Close()
		return nil, err
	}
	if err := dbAdapter.Prepare(); err != nil {
		dbAdapter.Close()
		return nil, err
	}

	engagement := postgres.NewEngagementAdapter(dbAdapter.DB())
	return &stores{
		catalog:     dbAdapter,
		enrollments: dbAdapter,
		views:       engagement,
		ratings:     engagement,
		stats:       dbAdapter,
		reconciler:  engagement,
		health:      dbAdapter,
		close:       dbAdapter.Close,
	}, nil
}
