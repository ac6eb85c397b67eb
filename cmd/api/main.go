// @title                       Build Service API
// @version                     1.0
// @description                 Construction brigades, working sites and their reviews.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/buildservice/build-service/internal/api"
	"github.com/buildservice/build-service/internal/api/handler"
	"github.com/buildservice/build-service/internal/api/metrics"
	"github.com/buildservice/build-service/internal/core/security"
	"github.com/buildservice/build-service/internal/core/service"
	"github.com/buildservice/build-service/internal/infrastructure/config"
	mongostore "github.com/buildservice/build-service/internal/infrastructure/db/mongo"
	"github.com/buildservice/build-service/internal/infrastructure/db/postgres"
	redisstore "github.com/buildservice/build-service/internal/infrastructure/db/redis"
	"github.com/buildservice/build-service/internal/infrastructure/queue"
	"github.com/buildservice/build-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "build-service",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Postgres: credentials and CRUD data ---
	pool, err := postgres.Open(ctx, postgres.Config{
		URL:             cfg.Postgres.URL,
		MaxConns:        cfg.Postgres.MaxConns,
		ConnectAttempts: cfg.Postgres.ConnectAttempts,
	}, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	// --- MongoDB: login audit trail ---
	mongoClient, mongoDB, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	loginEvents := mongostore.NewLoginEventRepository(mongoDB)
	if err := loginEvents.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Redis: failed-login throttle ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Audit workers ---
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewAuditDispatcher(cfg.Login.AuditWorkers, loginEvents, log, metrics.AuditEventsDroppedTotal.Inc)
	dispatcher.Start(workerCtx)
	defer func() {
		stopWorkers()
		dispatcher.Wait()
	}()

	// --- Core ---
	tokens, err := security.NewTokenManager(security.TokenConfig{
		Secret:   []byte(cfg.JWT.Secret),
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		Realm:    cfg.JWT.Realm,
		Validity: cfg.JWT.Validity,
	})
	if err != nil {
		return err
	}

	users := postgres.NewUserRepository(pool)
	contractors := postgres.NewContractorRepository(pool)
	hasher := security.NewPasswordHasher()
	emails := service.NewEmailChecker(users, contractors, cfg.Admin.Email)
	resolver := service.NewRoleResolver(users, contractors, service.AdminAccount{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	if cfg.Admin.Password == "" {
		log.Warn().Msg("ADMIN_PASSWORD is empty, bootstrap administrator disabled")
	}
	limiter := redisstore.NewLoginLimiter(rdb, cfg.Login.MaxFailures, cfg.Login.Lockout)

	e := api.NewRouter(api.RouterConfig{
		Services: api.Services{
			Auth:         service.NewAuthService(resolver, hasher, tokens, limiter, dispatcher, log),
			Audit:        service.NewLoginAuditService(loginEvents),
			Users:        service.NewUserService(users, emails, hasher, log),
			Contractors:  service.NewContractorService(contractors, users, emails, hasher, log),
			Comments:     service.NewCommentService(postgres.NewCommentRepository(pool), contractors, log),
			WorkingSites: service.NewWorkingSiteService(postgres.NewWorkingSiteRepository(pool), users, log),
		},
		Verifier: tokens,
		Realm:    tokens.Realm(),
		Logger:   log,
		Checks: []handler.HealthCheck{
			{Name: "postgres", Check: postgres.Pinger(pool)},
			{Name: "mongodb", Check: mongostore.Pinger(mongoClient)},
			{Name: "redis", Check: redisstore.Pinger(rdb)},
		},
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
