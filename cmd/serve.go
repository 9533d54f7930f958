package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zenmed-health/zenmed/internal/config"
	"github.com/zenmed-health/zenmed/internal/dashboard"
	"github.com/zenmed-health/zenmed/internal/logging"
	"github.com/zenmed-health/zenmed/internal/metrics"
	"github.com/zenmed-health/zenmed/internal/server"
	"github.com/zenmed-health/zenmed/internal/session"
	"github.com/zenmed-health/zenmed/internal/site"
	"github.com/zenmed-health/zenmed/internal/view"
)

const sweepInterval = time.Minute

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ZenMed web server",
	Long:  `Starts the HTTP server for the landing page, the auth forms and the dashboard. Stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger := logging.New(os.Stderr, cfg.LogLevel, string(cfg.LogFormat))

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		m := metrics.New("zenmed")

		store, closeStore, err := newSessionStore(ctx, cfg, m)
		if err != nil {
			return err
		}
		defer closeStore()

		views := view.New(logger)
		sessions := session.NewManager(store, session.Options{
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.SecureCookie,
		}, logger)

		srv := server.New(server.Config{
			Addr:           cfg.ListenAddr(),
			AllowAll:       cfg.CORS.AllowAll,
			MetricsEnabled: cfg.Metrics.Enabled,
		}, views, sessions, m, logger)

		registerAllRoutes(srv, views, sessions, m, logger)

		go func() {
			<-ctx.Done()
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("shutdown")
			}
		}()

		logger.Info().
			Str("version", Version).
			Str("session_store", string(cfg.Session.Store)).
			Bool("metrics", cfg.Metrics.Enabled).
			Msg("zenmed starting")

		return srv.Start()
	},
}

// newSessionStore builds the configured session store. The memory store's
// expiry sweep runs until ctx is done.
func newSessionStore(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (session.Store, func(), error) {
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := session.NewRedisStore(client, cfg.SessionTTL())
		if err := store.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Redis.Address, err)
		}
		return store, func() { client.Close() }, nil
	default:
		store := session.NewMemoryStore(cfg.SessionTTL())
		store.OnChange(m.SetSessions)
		go store.Run(ctx, sweepInterval)
		return store, func() {}, nil
	}
}

// registerAllRoutes mounts the public site and the dashboard.
func registerAllRoutes(srv *server.Server, views *view.Renderer, sessions *session.Manager, m *metrics.Metrics, logger zerolog.Logger) {
	site.New(views, sessions, m, logger).RegisterRoutes(srv.Pages())
	dashboard.New(views, sessions, m, logger).RegisterRoutes(srv.Pages())
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
