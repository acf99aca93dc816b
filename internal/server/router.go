// Package server assembles the gin engine and the optional gRPC health
// server out of the domain handlers.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/secure-duka/internal/analytics"
	analyticsH "github.com/fekuna/secure-duka/internal/analytics/handler"
	"github.com/fekuna/secure-duka/internal/auth"
	authH "github.com/fekuna/secure-duka/internal/auth/handler"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/fekuna/secure-duka/internal/product"
	prodH "github.com/fekuna/secure-duka/internal/product/handler"
	"github.com/fekuna/secure-duka/internal/sale"
	saleH "github.com/fekuna/secure-duka/internal/sale/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Deps struct {
	Logger        logger.ZapLogger
	DB            Pinger
	Auth          *auth.Authenticator
	Products      product.UseCase
	Sales         sale.UseCase
	Analytics     analytics.UseCase
	AllowOrigins  []string
	DaysThreshold int
	SecureCookie  bool
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(d.Logger), gin.Recovery())
	if len(d.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", headerRequestID},
			ExposeHeaders:    []string{headerRequestID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if err := loadTemplates(r); err != nil {
		d.Logger.Fatal("failed to parse templates", zap.Error(err))
	}

	authHandler := authH.NewAuthHandler(d.Auth, d.SecureCookie, d.Logger)
	prodHandler := prodH.NewProductHandler(d.Products, d.Logger)
	saleHandler := saleH.NewSaleHandler(d.Sales, d.Logger)
	analyticsHandler := analyticsH.NewAnalyticsHandler(d.Analytics, d.DaysThreshold, d.Logger)
	dashboard := newDashboardHandler(d.Products, d.Analytics, d.DaysThreshold, d.Logger)

	r.POST("/token", authHandler.Token)
	r.GET("/healthz", healthz(d.DB, d.Logger))

	protected := r.Group("/", auth.Middleware(d.Auth))
	{
		protected.GET("/inventory", prodHandler.ListInventory)

		products := protected.Group("/products")
		products.POST("/", prodHandler.CreateProduct)
		products.GET("/:id", prodHandler.GetProduct)
		products.POST("/restock/:product_id", prodHandler.Restock)

		sales := protected.Group("/sales")
		sales.POST("/", saleHandler.CreateSale)

		a := protected.Group("/analytics")
		a.GET("/forecast/:product_id", analyticsHandler.Forecast)
		a.GET("/restock-report/", analyticsHandler.RestockReport)
		a.GET("/restock-report/pdf", analyticsHandler.RestockReportPDF)
		a.GET("/raw-sales/:product_id", analyticsHandler.RawSales)

		protected.GET("/dashboard", dashboard.Show)
		protected.POST("/dashboard/restock", dashboard.Restock)
	}
	return r
}

func healthz(db Pinger, log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
