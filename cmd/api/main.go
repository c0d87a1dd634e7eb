package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "assistencia_os/docs"
	"assistencia_os/internal/adapter/http/handlers"
	"assistencia_os/internal/adapter/http/middleware"
	"assistencia_os/internal/adapter/http/routes"
	"assistencia_os/internal/adapter/persistence/repository"
	"assistencia_os/internal/infrastructure/auth"
	"assistencia_os/internal/infrastructure/cache"
	"assistencia_os/internal/infrastructure/config"
	"assistencia_os/internal/infrastructure/database"
	"assistencia_os/internal/infrastructure/logger"
	"assistencia_os/internal/infrastructure/messaging"
	"assistencia_os/internal/infrastructure/metrics"
	"assistencia_os/internal/infrastructure/payments"
	"assistencia_os/internal/usecase"
	"assistencia_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Assistência OS API
// @version         1.0
// @description     Service orders, resale inventory, revenue reports and public receipts for a phone repair shop, backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	ctx := context.Background()
	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		log.Fatal("Failed to connect to DynamoDB", zap.Error(err))
	}
	if cfg.Dynamo.Endpoint != "" {
		if err := database.EnsureTables(ctx, ddb, log, tableNames(cfg.Dynamo)...); err != nil {
			log.Fatal("Failed to provision local tables", zap.Error(err))
		}
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.Dynamo.OrdersTable, log)
	resaleRepo := repository.NewResaleDynamoRepository(ddb, cfg.Dynamo.ResalesTable, log)
	shareRepo := repository.NewShareDynamoRepository(ddb, cfg.Dynamo.OrderSharesTable, cfg.Dynamo.ResaleSharesTable)

	m := metrics.Registry(cfg.Metrics.Namespace)

	healthChecks := map[string]routes.HealthCheck{
		"dynamodb": func(ctx context.Context) error {
			_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(cfg.Dynamo.OrdersTable)})
			return err
		},
	}

	var snapshots interfaces.ISnapshotCache
	if cfg.Redis.Addr != "" {
		rdb := cache.New(cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			UseTLS:   cfg.Redis.UseTLS,
		}, log)
		defer func() {
			_ = rdb.Close()
		}()
		if err := rdb.Ping(ctx); err != nil {
			log.Warn("Redis unreachable, share reads will hit DynamoDB until it recovers", zap.Error(err))
		}
		snapshots = cache.NewSnapshotCache(rdb, cfg.Redis.ShareTTL)
		healthChecks["redis"] = rdb.Ping
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payment, log)
	if err != nil {
		log.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, log, m)
	resaleUseCase := usecase.NewResaleUseCase(resaleRepo, log)
	revenueUseCase := usecase.NewRevenueUseCase(orderRepo, resaleRepo, cfg.Location(), log)
	shareUseCase := usecase.NewShareUseCase(orderRepo, resaleRepo, shareRepo, snapshots, cfg.App.StoreName, log, m)
	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, paymentGateway, usecase.PaymentOptions{
		MockMode:           cfg.Payment.Mock,
		Sandbox:            cfg.Payment.Sandbox(),
		SandboxPayerEmail:  cfg.Payment.TestPayerEmail,
		SandboxPayerUserID: cfg.Payment.TestPayerUserID,
	}, log, m)

	links := messaging.NewLinkBuilder(cfg.App.PublicOrigin, cfg.Messaging)
	jwtService := auth.NewJWTService(cfg.JWT)

	engine := routes.NewRouter(routes.Options{
		Logger:         log,
		Auth:           auth.Middleware(jwtService),
		Metrics:        m.GinMiddleware(),
		RequestTimeout: cfg.HTTP.RequestTimeout,
		PublicLimiter:  middleware.NewRateLimiter(cfg.HTTP.PublicRateLimit, cfg.HTTP.PublicRateBurst),
		TrustedProxies: cfg.HTTP.TrustedProxies,
		HealthChecks:   healthChecks,
	}, routes.Handlers{
		Orders:   handlers.NewOrderHandler(orderUseCase),
		Resales:  handlers.NewResaleHandler(resaleUseCase),
		Reports:  handlers.NewReportHandler(revenueUseCase, cfg.Location()),
		Shares:   handlers.NewShareHandler(shareUseCase, orderUseCase, links),
		Payments: handlers.NewPaymentHandler(paymentUseCase),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func tableNames(cfg config.DynamoConfig) []string {
	return []string{cfg.OrdersTable, cfg.ResalesTable, cfg.OrderSharesTable, cfg.ResaleSharesTable}
}
