package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nikol804/dotapost/internal/authz"
	"github.com/nikol804/dotapost/internal/config"
	"github.com/nikol804/dotapost/internal/handler"
	"github.com/nikol804/dotapost/internal/logger"
	"github.com/nikol804/dotapost/internal/metrics"
	"github.com/nikol804/dotapost/internal/middleware"
	"github.com/nikol804/dotapost/internal/ratelimit"
	"github.com/nikol804/dotapost/internal/service"
	"github.com/nikol804/dotapost/internal/token"
	"github.com/nikol804/dotapost/internal/validator"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	if b.pool != nil {
		poolStatsCollector := metrics.NewPoolStatsCollector(b.pool)
		poolStatsCollector.Start(cfg.DBStatsInterval)
		defer poolStatsCollector.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      withCORS(cfg, newRouter(cfg, b)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server",
			zap.String("port", cfg.ServerPort),
			zap.String("storage", b.name),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("Server exited")
	return nil
}

// newRouter wires services and handlers on top of the backend.
func newRouter(cfg *config.Config, b *backend) *gin.Engine {
	v := validator.NewValidator()
	signer := token.NewSigner(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	limiter := ratelimit.New(cfg.CommentRateWindow, cfg.RateLimitCacheSize)
	policy := authz.Policy{AllowStaff: cfg.ModerationAllowStaff}

	postService := service.NewPostService(b.tx, b.posts, b.users, b.comments, b.likes, v)
	commentService := service.NewCommentService(b.posts, b.comments, b.users, limiter, v)
	likeService := service.NewLikeService(b.posts, b.likes, b.users)
	accountService := service.NewAccountService(b.users, b.posts, v)
	moderationService := service.NewModerationService(b.tx, b.posts, b.comments, b.actions, b.users, policy)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.Metrics())
	router.Use(middleware.Authenticate(signer))

	handler.RegisterHealthRoutes(router, handler.NewHealthHandler(b.name, b.pinger))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.RegisterRoutes(router, handler.Handlers{
		Posts:      handler.NewPostHandler(postService, likeService),
		Comments:   handler.NewCommentHandler(commentService),
		Accounts:   handler.NewAccountHandler(accountService),
		Moderation: handler.NewModerationHandler(moderationService),
		Export:     handler.NewExportHandler(moderationService),
	})
	return router
}

// withCORS allows browser clients from the configured origins. Without
// configured origins the API is same-origin only.
func withCORS(cfg *config.Config, h http.Handler) http.Handler {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return h
	}
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Retry-After", "Location", "Content-Disposition"},
		MaxAge:         600,
	})
	return c.Handler(h)
}
