package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"grocery-recipe/infra"
	"grocery-recipe/repositories"
	"grocery-recipe/routes"
	"grocery-recipe/services"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DBに接続できなければ起動しない
	store, tokenDB, err := openStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
		closeSQL(tokenDB)
	}()

	if cfg.AutoMigrate {
		if err := migrate(ctx, store, tokenDB); err != nil {
			return err
		}
	}

	hasher := services.NewHasher(runtime.NumCPU(), bcrypt.DefaultCost)
	defer hasher.Close()

	if cfg.AIAPIKey == "" {
		logrus.Warn("AI_API_KEY is not set; recipe suggestions will fail")
	}
	generator := infra.NewChatCompletionGenerator(infra.GeneratorConfig{
		BaseURL: cfg.AIBaseURL,
		APIKey:  cfg.AIAPIKey,
		Model:   cfg.AIModel,
		Timeout: cfg.AITimeout,
	})

	tokenRepository := repositories.NewTokenRepository(tokenDB)
	r := routes.SetupRouter(routes.Dependencies{
		Store:           store,
		TokenRepository: tokenRepository,
		Hasher:          hasher,
		Generator:       generator,
		Config:          cfg,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "failed to start server")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "server forced to shutdown")
		}
		return nil
	})

	g.Go(func() error {
		cleanExpiredTokens(gctx, tokenRepository, cfg.TokenCleanupInterval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logrus.Info("Server exited")
	return nil
}

// cleanExpiredTokens 期限切れのブラックリストを定期的に削除する
func cleanExpiredTokens(ctx context.Context, repository repositories.ITokenRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := repository.CleanExpiredTokens(ctx)
			if err != nil {
				logrus.WithError(err).Warn("Failed to clean expired tokens")
				continue
			}
			if removed > 0 {
				logrus.WithField("removed", removed).Debug("Cleaned expired tokens")
			}
		}
	}
}
