package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sellora/sellerwallet/internal/config"
	"github.com/sellora/sellerwallet/internal/handlers"
	"github.com/sellora/sellerwallet/internal/pg"
	"github.com/sellora/sellerwallet/internal/repo"
	"github.com/sellora/sellerwallet/internal/rollover"
	"github.com/sellora/sellerwallet/internal/service"
	"github.com/sellora/sellerwallet/internal/statussync"
	"github.com/sellora/sellerwallet/internal/storage/pgstore"
	"github.com/sellora/sellerwallet/pkg/auth"
	"github.com/sellora/sellerwallet/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	rollover *rollover.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	store := pgstore.New(pg.New(pool))
	channel := a.buildStatusChannel(cfg)

	a.cfg = cfg
	a.repo = repo.New(store)
	a.srv, err = service.New(a.repo, channel, cfg)
	if err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTKey))
	a.rollover = rollover.New(a.repo.AccountRepo)

	if err := a.repo.MethodRepo.Seed(ctx); err != nil {
		zap.L().Error("seeding withdrawal methods failed: ", zap.Error(err))
		return fmt.Errorf("can't seed withdrawal methods: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startRollover(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildStatusChannel prefers Redis so status changes reach sessions in
// other processes; without Redis the channel only spans this process and
// correctness still holds because gates re-read the durable store.
func (a *Application) buildStatusChannel(cfg *config.Config) statussync.Channel {
	if cfg.Redis == "" {
		return statussync.NewMemoryChannel(statussync.NewDispatcher(10))
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Redis})
	return statussync.NewRedisChannel(client)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startRollover(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.rollover.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
