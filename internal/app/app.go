package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"ResearchCatalog/internal/api"
	"ResearchCatalog/internal/catalog"
	"ResearchCatalog/internal/config"
	"ResearchCatalog/internal/infrastructure/metrics"
	"ResearchCatalog/internal/infrastructure/parser"
	"ResearchCatalog/internal/infrastructure/scheduler"
	"ResearchCatalog/internal/infrastructure/storage"
	"ResearchCatalog/internal/infrastructure/telegram"
	"ResearchCatalog/internal/infrastructure/telemetry"
	"ResearchCatalog/internal/infrastructure/watcher"
	"ResearchCatalog/internal/logging"
	"ResearchCatalog/internal/ports"
	"ResearchCatalog/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg     config.Config
	logger  *slog.Logger
	clock   catalog.Clock
	loader  *catalog.Loader
	store   *catalog.Store
	metrics *metrics.Metrics
	tracker *telemetry.Client
}

var _ usecase.CatalogLoader = (*Application)(nil)

// New builds the application graph. Nothing is loaded or started yet.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format, nil)
	}

	loader := catalog.NewLoader(cfg.Catalog.Congresses, cfg.Catalog.Journals, nil)
	store := catalog.NewStore(loader, time.Now, cfg.Catalog.Location(), logging.Component(baseLogger, "catalog"))

	m := metrics.New()
	store.OnSwap(m.ObserveSnapshot)

	return &Application{
		cfg:     cfg,
		logger:  baseLogger,
		clock:   time.Now,
		loader:  loader,
		store:   store,
		metrics: m,
	}
}

// Current returns the active catalog snapshot.
func (a *Application) Current() *catalog.Snapshot {
	return a.store.Current()
}

// Load fetches the catalog once. Failures keep the previous snapshot.
func (a *Application) Load(ctx context.Context) error {
	err := a.store.Load(ctx)
	a.metrics.ObserveLoad(err)
	return err
}

// Now returns the current time in the catalog location.
func (a *Application) Now() time.Time {
	return a.clock().In(a.cfg.Catalog.Location())
}

// Tracker returns the telemetry client, creating it on first use. The
// caller owns Start and Close.
func (a *Application) Tracker() *telemetry.Client {
	if a.tracker == nil {
		a.tracker = telemetry.NewClient(
			a.cfg.Telemetry.Endpoint,
			a.cfg.Telemetry.QueueSize,
			a.cfg.Telemetry.Timeout,
			logging.Component(a.logger, "telemetry"),
		)
	}
	return a.tracker
}

// Notifier returns the Telegram notifier or nil when credentials are missing.
func (a *Application) Notifier() ports.Notifier {
	tg := a.cfg.Notifications.Telegram
	if !tg.Enabled() {
		return nil
	}
	return telegram.NewNotifier(tg.BaseURL, tg.BotToken, tg.ChatID)
}

// Digest builds the deadline digest over this application's catalog.
func (a *Application) Digest(notifier ports.Notifier) *usecase.Digest {
	return usecase.NewDigest(usecase.DigestDeps{
		Catalog:  a,
		Notifier: notifier,
		Logger:   logging.Component(a.logger, "digest"),
		Reload:   true,
	})
}

// Build regenerates the catalog documents from the configured sheets.
func (a *Application) Build(ctx context.Context) ([]parser.BuildResult, error) {
	log := logging.Component(a.logger, "builder")
	builder := parser.NewBuilder(parser.NewDefaultRegistry(a.logger), a.cfg.Sources, log)
	return builder.Build(ctx, a.Now())
}

// Serve loads the catalog and runs the HTTP server, the file watcher and
// the digest scheduler until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	if err := a.Load(ctx); err != nil {
		a.logger.Error("initial catalog load failed, serving without catalog", "error", err)
	}

	sink, closeSink, err := a.eventSink(ctx)
	if err != nil {
		return err
	}
	defer closeSink()

	handler := api.NewServer(api.Deps{
		Catalog:        a.store,
		Sink:           sink,
		Metrics:        a.metrics,
		Logger:         logging.Component(a.logger, "http"),
		AllowedOrigins: a.cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: a.cfg.Server.ReadTimeout,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
	}

	var job backgroundJob
	if sched := a.digestScheduler(); sched != nil {
		job = sched
	}
	return a.run(ctx, srv, job)
}

// backgroundJob is started before the server accepts connections and
// stopped once it shuts down.
type backgroundJob interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

func (a *Application) run(ctx context.Context, srv *http.Server, job backgroundJob) error {
	if job != nil {
		if err := job.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if w := a.catalogWatcher(); w != nil {
		g.Go(func() error { return w.Run(gctx) })
	}

	if job != nil {
		g.Go(func() error {
			<-gctx.Done()
			stopCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
			defer cancel()
			return job.Stop(stopCtx)
		})
	}

	return g.Wait()
}

func (a *Application) eventSink(ctx context.Context) (ports.EventSink, func(), error) {
	if a.cfg.Database.DSN == "" {
		return storage.NewLogSink(logging.Component(a.logger, "events")), func() {}, nil
	}

	db, err := storage.Open(ctx, a.cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := storage.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return storage.NewEventStore(db), closeDB(db, a.logger), nil
}

func closeDB(db *sql.DB, logger *slog.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warn("close database", "error", err)
		}
	}
}

func (a *Application) catalogWatcher() *watcher.Watcher {
	if !a.cfg.Catalog.Watch {
		return nil
	}

	var paths []string
	for _, loc := range a.loader.Locations() {
		if !catalog.IsRemote(loc) {
			paths = append(paths, loc)
		}
	}
	if len(paths) == 0 {
		return nil
	}

	log := logging.Component(a.logger, "watcher")
	w, err := watcher.New(paths, 0, func(ctx context.Context) {
		if err := a.Load(ctx); err != nil {
			log.Error("catalog reload failed", "error", err)
		}
	}, log)
	if err != nil {
		log.Warn("catalog watch disabled", "error", err)
		return nil
	}
	return w
}

func (a *Application) digestScheduler() *usecase.Scheduler {
	if !a.cfg.Scheduler.Enabled {
		return nil
	}
	notifier := a.Notifier()
	if notifier == nil {
		a.logger.Warn("scheduler enabled without telegram credentials, digest disabled")
		return nil
	}

	driver := scheduler.NewTickerScheduler(a.cfg.Scheduler.Interval, a.cfg.Scheduler.RunOnStart)
	return usecase.NewScheduler(driver, a.Digest(notifier), a.cfg.Catalog.Location(), logging.Component(a.logger, "scheduler"))
}
