package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sumpierrezf/star-wars-api-with-token/config"
	"github.com/sumpierrezf/star-wars-api-with-token/database"
	"github.com/sumpierrezf/star-wars-api-with-token/routes"
	"github.com/sumpierrezf/star-wars-api-with-token/services"
	"github.com/sumpierrezf/star-wars-api-with-token/store"
	"github.com/sumpierrezf/star-wars-api-with-token/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(envFile, cmd.Flags())
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().String("port", "", "listen port (overrides PORT)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log, err := utils.InitLogger(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL, logger.Warn)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("failed to close database", zap.Error(err))
		}
	}()
	log.Info("connected to database")

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("migration complete")
	}

	if cfg.SeedOnStart {
		if _, err := services.SyncCatalog(db, cfg.CatalogSeedFile, log); err != nil {
			return err
		}
	}

	if cfg.CatalogSyncCron != "" {
		c, err := services.StartCatalogSyncCron(db, cfg.CatalogSyncCron, cfg.CatalogSeedFile, log)
		if err != nil {
			return err
		}
		defer func() { <-c.Stop().Done() }()
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return err
		}
		defer rdb.Close()
		log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	}

	gin.SetMode(cfg.GinMode)
	router := routes.SetupRouter(routes.Deps{
		Store:              store.New(db),
		Logger:             log,
		Redis:              rdb,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		AllowedOrigins:     cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
