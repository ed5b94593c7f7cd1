package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisCache "github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/cache/redis"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/email"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/httpapi"
	natsAdapter "github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/messaging/nats"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/notify"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/repository/memory"
	mongoRepo "github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/repository/mongodb"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/storage/s3"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/catalog"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/config"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/tracer"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("INFO: .env file not found or error loading: %v. Relying on OS environment variables.\n", err)
	}

	// 1. Configuration, then the logger it describes
	bootLogger := logger.NewLogger()
	cfg, err := config.LoadConfig(bootLogger)
	if err != nil {
		bootLogger.Fatal("Failed to load configuration", zap.Error(err))
	}
	_ = bootLogger.Sync()

	appLogger := logger.New(cfg.Logger())
	defer func() { _ = appLogger.Sync() }()
	appLogger.Info("Application starting...", zap.String("service_name", cfg.ServiceName))

	// 2. Tracing
	tp := tracer.InitTracer(cfg.ServiceName, cfg.OTExporterOTLPEndpoint, appLogger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			appLogger.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	// 3. Metrics
	metricsManager := metrics.NewMetricsManager("admin")
	metricsSrv := metrics.NewMetricsServer(cfg.PrometheusMetricsPort, appLogger, metricsManager.Registry)
	if metricsSrv != nil {
		go func() {
			appLogger.Info("Starting Prometheus metrics server", zap.String("addr", metricsSrv.Addr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				appLogger.Error("Prometheus metrics server failed", zap.Error(err))
			}
		}()
	}

	// 4. Records: loaded once, read-only afterwards
	ctx := context.Background()
	source, closeSource := openSource(ctx, cfg, appLogger)
	defer closeSource()

	cat, err := catalog.Load(ctx, source)
	if err != nil {
		appLogger.Fatal("Failed to load catalog", zap.Error(err))
	}
	appLogger.Info("Catalog loaded",
		zap.String("data_source", cfg.DataSource),
		zap.Int("users", len(cat.Users())),
		zap.Int("properties", len(cat.Properties())),
		zap.Int("transactions", len(cat.Transactions())),
		zap.Int("chats", len(cat.Chats())))

	// 5. Optional adapters
	var queryCache domain.QueryCache = redisCache.NopCache{}
	if cfg.RedisAddress != "" {
		client, err := redisCache.NewClient(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			appLogger.Warn("Redis unavailable, query cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			queryCache = redisCache.NewQueryCache(client, appLogger)
			appLogger.Info("Redis query cache enabled", zap.String("addr", cfg.RedisAddress))
		}
	}

	var sinks []notify.Sink
	if cfg.NATSURL != "" {
		publisher, err := natsAdapter.NewPublisher(cfg.NATSURL, appLogger, cfg.ServiceName)
		if err != nil {
			appLogger.Warn("NATS unavailable, notifications will not be published", zap.Error(err))
		} else {
			defer publisher.Close()
			sinks = append(sinks, notify.Sink{Name: "nats", Notifier: publisher})
		}
	}
	if cfg.SMTPHost != "" && cfg.AdminNotifyEmail != "" {
		mailer, err := email.NewNotifier(email.SMTPConfig{
			Host:        cfg.SMTPHost,
			Port:        cfg.SMTPPort,
			Username:    cfg.SMTPUsername,
			Password:    cfg.SMTPPassword,
			SenderEmail: cfg.SMTPSenderEmail,
		}, cfg.AdminNotifyEmail, appLogger)
		if err != nil {
			appLogger.Warn("E-mail notifications disabled", zap.Error(err))
		} else {
			sinks = append(sinks, notify.Sink{Name: "email", Notifier: mailer})
		}
	}
	dispatcher := notify.NewDispatcher(appLogger, sinks...)

	var images domain.ImageResolver
	if cfg.MinioEndpoint != "" {
		resolver, err := s3.NewImageResolver(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL, cfg.ImageURLTTL, appLogger)
		if err != nil {
			appLogger.Warn("MinIO unavailable, image references served as stored", zap.Error(err))
		} else {
			if err := resolver.CheckBucket(ctx); err != nil {
				appLogger.Warn("MinIO bucket check failed", zap.Error(err))
			}
			images = resolver
		}
	}

	// 6. Usecases
	lister := usecase.NewLister(queryCache, cfg.QueryCacheTTL, metricsManager, appLogger)
	runner := usecase.NewActionRunner(dispatcher, cfg.ActionDelay, time.Now, metricsManager, appLogger)
	auth, err := usecase.NewAuthUsecase(usecase.AuthConfig{
		AdminEmail:        cfg.AdminEmail,
		AdminPassword:     cfg.AdminPassword,
		AdminPasswordHash: cfg.AdminPasswordHash,
		JWTSecret:         cfg.JWTSecret,
		JWTExpiry:         cfg.JWTExpiry,
		LoginDelay:        cfg.LoginDelay,
	}, dispatcher, time.Now, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize auth", zap.Error(err))
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Users:        usecase.NewUserUsecase(cat, lister, runner, appLogger),
		Properties:   usecase.NewPropertyUsecase(cat, lister, runner, images, appLogger),
		Transactions: usecase.NewTransactionUsecase(cat, lister, appLogger),
		Chats:        usecase.NewChatUsecase(cat, lister, appLogger),
		Dashboard:    usecase.NewDashboardUsecase(cat, time.Now, appLogger),
		Auth:         auth,
		Settings:     usecase.NewSettingsUsecase(runner, appLogger),
	}, appLogger)

	// 7. HTTP server
	srv := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: httpapi.NewRouter(handler, httpapi.RouterConfig{
			AuthEnabled: cfg.AuthEnabled,
			Tokens:      auth,
			Metrics:     metricsManager,
		}, appLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", srv.Addr), zap.Bool("auth_enabled", cfg.AuthEnabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Metrics server shutdown failed", zap.Error(err))
		}
	}
	appLogger.Info("Application shutting down...")
}

// openSource picks the record source named by DATA_SOURCE. The returned
// func releases its connection.
func openSource(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.RecordSource, func()) {
	if cfg.DataSource != config.DataSourceMongo {
		src, err := memory.Load(cfg.FixturesPath)
		if err != nil {
			log.Fatal("Failed to load fixtures", zap.String("path", cfg.FixturesPath), zap.Error(err))
		}
		return src, func() {}
	}

	client, err := mongoRepo.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	log.Info("Successfully connected and pinged MongoDB.")
	return mongoRepo.NewSource(client.Database(cfg.MongoDatabase), log), func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}
}
