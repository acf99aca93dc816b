package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	analyticsUC "github.com/fekuna/secure-duka/internal/analytics/usecase"
	"github.com/fekuna/secure-duka/internal/auth"
	prodRepoPkg "github.com/fekuna/secure-duka/internal/product/repository"
	prodUCPkg "github.com/fekuna/secure-duka/internal/product/usecase"
	saleRepoPkg "github.com/fekuna/secure-duka/internal/sale/repository"
	saleUCPkg "github.com/fekuna/secure-duka/internal/sale/usecase"
	"github.com/fekuna/secure-duka/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and, when GRPC_PORT is set, the gRPC health server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Configuration and logger
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	appLogger := newLogger(cfg)
	defer appLogger.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Database
	db, err := openMigrated(cmd, cfg)
	if err != nil {
		appLogger.Error("Could not initialise database", zap.Error(err))
		return err
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	// 3. Authentication
	authenticator, err := auth.NewAuthenticator(auth.Config{
		Username:     cfg.Auth.Username,
		PasswordHash: cfg.Auth.PasswordHash,
		Password:     cfg.Auth.Password,
		SecretKey:    cfg.JWT.SecretKey,
		TTL:          time.Duration(cfg.JWT.ExpireMinutes) * time.Minute,
	})
	if err != nil {
		return err
	}

	// 4. Repositories and use cases
	prodRepo := prodRepoPkg.NewSQLRepository(db)
	saleRepo := saleRepoPkg.NewSQLRepository(db)

	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	saleUC := saleUCPkg.NewSaleUseCase(saleRepo, appLogger)
	anUC := analyticsUC.NewAnalyticsUseCase(prodRepo, saleRepo, appLogger)

	// 5. HTTP server
	router := server.NewRouter(server.Deps{
		Logger:        appLogger,
		DB:            db,
		Auth:          authenticator,
		Products:      prodUC,
		Sales:         saleUC,
		Analytics:     anUC,
		AllowOrigins:  cfg.CORS.AllowOrigins,
		DaysThreshold: cfg.Forecast.DefaultDaysThreshold,
		SecureCookie:  !cfg.IsDevelopment(),
	})
	httpServer := &http.Server{
		Addr:              listenAddr(cfg.Server.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 6. Optional gRPC health server
	grpcServer, healthServer := server.NewGRPCServer(appLogger)
	if cfg.Server.GRPCPort != "" {
		lis, err := net.Listen("tcp", listenAddr(cfg.Server.GRPCPort))
		if err != nil {
			return err
		}
		go func() {
			appLogger.Info("Starting gRPC server", zap.String("addr", lis.Addr().String()))
			if err := grpcServer.Serve(lis); err != nil {
				errCh <- err
			}
		}()
	}

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-errCh:
		appLogger.Error("Server failed", zap.Error(err))
		return err
	}

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		appLogger.Error("HTTP shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
	return nil
}

func listenAddr(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
