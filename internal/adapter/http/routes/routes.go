package routes

import (
	"context"
	"net/http"
	"time"

	"assistencia_os/internal/adapter/http/handlers"
	"assistencia_os/internal/adapter/http/middleware"
	"assistencia_os/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathOrders  = "/orders"
	PathResales = "/resales"
	PathReports = "/reports"
	PathPublic  = "/public"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Orders   *handlers.OrderHandler
	Resales  *handlers.ResaleHandler
	Reports  *handlers.ReportHandler
	Shares   *handlers.ShareHandler
	Payments *handlers.PaymentHandler
}

// Options carries the cross-cutting middleware for the router.
type Options struct {
	Logger         *zap.Logger
	Auth           gin.HandlerFunc
	Metrics        gin.HandlerFunc
	RequestTimeout time.Duration
	PublicLimiter  *middleware.RateLimiter
	TrustedProxies []string
	HealthChecks   map[string]HealthCheck
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(opts Options, h Handlers) *gin.Engine {
	router := gin.New()
	_ = router.SetTrustedProxies(opts.TrustedProxies)

	router.Use(logger.Recovery(opts.Logger))
	router.Use(logger.GinMiddleware(opts.Logger))
	if opts.Metrics != nil {
		router.Use(opts.Metrics)
	}
	router.Use(middleware.Timeout(opts.RequestTimeout))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", healthHandler(opts.HealthChecks))

	publicMiddleware := []gin.HandlerFunc{}
	if opts.PublicLimiter != nil {
		publicMiddleware = append(publicMiddleware, middleware.RateLimit(opts.PublicLimiter))
	}

	// Receipt links handed to customers
	receipts := router.Group("", publicMiddleware...)
	receipts.GET("/s/:id", h.Shares.GetOrderShare)
	receipts.GET("/vs/:id", h.Shares.GetResaleShare)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1.Group(PathPublic, publicMiddleware...), h.Shares)

	// Staff routes
	private := v1.Group("", opts.Auth)
	addOrderRoutes(private, h.Orders, h.Shares, h.Payments)
	addResaleRoutes(private, h.Resales, h.Shares)
	addReportRoutes(private, h.Reports)

	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addPublicRoutes(rg *gin.RouterGroup, shareHandler *handlers.ShareHandler) {
	rg.GET("/orders/:id", shareHandler.GetOrderShare)
	rg.GET("/resales/:id", shareHandler.GetResaleShare)
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, shareHandler *handlers.ShareHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.POST("/:id/start", orderHandler.StartRepair)
		orders.POST("/:id/complete", orderHandler.Complete)
		orders.POST("/:id/cancel", orderHandler.Cancel)
		orders.PUT("/:id/photos", orderHandler.SavePhotos)
		orders.POST("/:id/share", shareHandler.PublishOrder)
		orders.POST("/:id/payment", paymentHandler.ChargeOrder)
	}
}

func addResaleRoutes(rg *gin.RouterGroup, resaleHandler *handlers.ResaleHandler, shareHandler *handlers.ShareHandler) {
	resales := rg.Group(PathResales)
	{
		resales.POST("", resaleHandler.CreateResale)
		resales.GET("", resaleHandler.ListResales)
		resales.GET("/:id", resaleHandler.GetResale)
		resales.DELETE("/:id", resaleHandler.DeleteResale)
		resales.POST("/:id/sell", resaleHandler.MarkSold)
		resales.POST("/:id/cancel-sale", resaleHandler.CancelSale)
		resales.POST("/:id/share", shareHandler.PublishResale)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/monthly", reportHandler.Monthly)
		reports.GET("/daily", reportHandler.Daily)
	}
}

func healthHandler(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		results := gin.H{}
		for name, check := range checks {
			if err := check(c.Request.Context()); err != nil {
				logger.FromGin(c).Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}
		c.JSON(status, gin.H{"status": http.StatusText(status), "checks": results})
	}
}
