package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/my-shop/go-backend/internal/cfg"
	v1Http "github.com/my-shop/go-backend/internal/delivery/v1/http"
	"github.com/my-shop/go-backend/internal/infrastructure/kafka"
	"github.com/my-shop/go-backend/internal/repository/fs"
	"github.com/my-shop/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/my-shop/go-backend/internal/repository/pgdb/converter"
	redisRepo "github.com/my-shop/go-backend/internal/repository/redis"
	"github.com/my-shop/go-backend/internal/usecase"
	"github.com/my-shop/go-backend/pkg/clients"
	"github.com/my-shop/go-backend/pkg/closer"
	"github.com/my-shop/go-backend/pkg/e"
	"github.com/my-shop/go-backend/pkg/logger"
	"github.com/my-shop/go-backend/pkg/postgres"
)

// App wires the storefront together: PostgreSQL, Redis sessions, the Kafka
// outbox worker and the HTTP delivery layer.
type App struct {
	cfg    *config.Config
	logger logger.Logger
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	return &App{cfg: cfg, logger: logger}, nil
}

// Run starts the application and blocks until a shutdown signal or a fatal
// server error.
func (a *App) Run() error {
	log := a.logger

	db, err := initPGDB(log, a.cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		return err
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		log.Errorf(err, "failed to connect to redis")
		return err
	}
	redisCancel()

	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.ProductConverter{})
	userRepo := pgdb.NewUserRepo(db.Pool, pgdbConv.UserConverter{})
	adminCredRepo := pgdb.NewAdminCredentialRepo(db.Pool)
	orderRepo := pgdb.NewOrderRepo(db.Pool, pgdbConv.OrderConverter{})
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.OutboxEventConverter{})

	sessionRepo := redisRepo.NewSessionRepo(redisClient, a.cfg.Session.TTL)
	imageRepo := fs.NewImageRepo(a.cfg.Images)
	settingsRepo := fs.NewSettingsRepo(a.cfg.Settings, log)

	authUC := usecase.NewAuthUC(userRepo, adminCredRepo, a.cfg.Admin, log)

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authUC.EnsureAdminCredential(bootCtx); err != nil {
		bootCancel()
		log.Errorf(err, "failed to seed admin credential")
		return err
	}
	bootCancel()

	producer, err := kafka.NewProducer(log, a.cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return err
	}

	if err := producer.EnsureTopic(15 * time.Second); err != nil {
		// The outbox keeps events until the broker shows up.
		log.Warnf("kafka topic not ready: %v", err)
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	worker.Start(workerCtx)

	catalogUC := usecase.NewCatalogUC(productRepo, settingsRepo, log)
	checkoutUC := usecase.NewCheckoutUC(productRepo, orderRepo, outboxRepo, db.Pool, log)
	adminUC := usecase.NewAdminUC(
		productRepo, orderRepo, userRepo, outboxRepo,
		imageRepo, settingsRepo, db.Pool, log,
	)

	sessions := v1Http.NewSessionManager(sessionRepo, a.cfg.Session, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, checkoutUC, authUC, adminUC, sessions, a.cfg.Images)

	httpSrv := v1Http.NewServer(r, a.cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	// Closers run LIFO: HTTP first so no request is in flight when the
	// worker and connections go down.
	cl := closer.NewCloser(15 * time.Second)
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})
	cl.Add(func(ctx context.Context) error {
		workerCancel()
		worker.Stop()
		return nil
	})
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		log.Warnf("shutdown finished with errors: %v", err)
	} else {
		log.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
