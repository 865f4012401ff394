package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/clipdeals/backend/api/handler"
	"github.com/clipdeals/backend/internal/access"
	"github.com/clipdeals/backend/internal/config"
	"github.com/clipdeals/backend/internal/infrastructure/buffer"
	"github.com/clipdeals/backend/internal/infrastructure/monitor"
	pgInfra "github.com/clipdeals/backend/internal/infrastructure/postgres"
	redisInfra "github.com/clipdeals/backend/internal/infrastructure/redis"
	"github.com/clipdeals/backend/internal/middleware"
	"github.com/clipdeals/backend/internal/router"
	"github.com/clipdeals/backend/internal/services"
	"github.com/clipdeals/backend/internal/services/lifecycle"
	"github.com/clipdeals/backend/pkg/httpcontext"
	"github.com/clipdeals/backend/pkg/logger"
	"github.com/clipdeals/backend/repository/postgres"
	redisRepo "github.com/clipdeals/backend/repository/redis"
	authUC "github.com/clipdeals/backend/usecase/auth"
	campaignUC "github.com/clipdeals/backend/usecase/campaign"
	onboardingUC "github.com/clipdeals/backend/usecase/onboarding"
	payoutUC "github.com/clipdeals/backend/usecase/payout"
	submissionUC "github.com/clipdeals/backend/usecase/submission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "pending_writes")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	profileRepo := postgres.NewProfileRepository(pool)
	creatorRepo := postgres.NewCreatorRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	submissionRepo := postgres.NewSubmissionRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Session.TTL)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		profileRepo,
		creatorRepo,
		campaignRepo,
		submissionRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	authUseCase := authUC.New(profileRepo, sessionRepo, authUC.Config{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	}, zapLogger)
	onboardingUseCase := onboardingUC.New(profileRepo, creatorRepo, brandRepo, zapLogger)
	campaignUseCase := campaignUC.New(campaignRepo, bufferBridge, zapLogger)
	submissionUseCase := submissionUC.New(submissionRepo, campaignRepo, bufferBridge, zapLogger)
	payoutUseCase := payoutUC.New(submissionRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:       apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, cfg.Session.TTL),
		Dashboard:  apiHandler.NewDashboardHandler(onboardingUseCase, campaignUseCase, payoutUseCase, ctxAdapter, zapLogger),
		Onboarding: apiHandler.NewOnboardingHandler(onboardingUseCase, ctxAdapter, zapLogger),
		Campaign:   apiHandler.NewCampaignHandler(campaignUseCase, ctxAdapter, zapLogger),
		Submission: apiHandler.NewSubmissionHandler(submissionUseCase, ctxAdapter, zapLogger),
		Payout:     apiHandler.NewPayoutHandler(payoutUseCase, ctxAdapter, zapLogger),
		Health:     apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	gate := access.NewGate(profileRepo, creatorRepo, brandRepo, bufferBridge, zapLogger)
	accessMiddleware := middleware.AccessControl(gate, authUseCase, ctxAdapter, zapLogger)

	r := router.New(handlers)

	server := &fasthttp.Server{
		Handler:      accessMiddleware(r.Handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
