package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ecoquest/auth"
	"ecoquest/catalog"
	"ecoquest/config"
	"ecoquest/geo"
	"ecoquest/handlers"
	"ecoquest/live"
	"ecoquest/quest"
	"ecoquest/store"
	"ecoquest/vision"
	"ecoquest/weather"
)

func main() {
	// .env is optional; real environments set variables directly.
	godotenv.Load()
	cfg := config.Load()

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	st, err := store.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	adminHash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}
	if err := st.EnsureAdmin(cfg.Admin.Username, adminHash); err != nil {
		return err
	}

	cat := catalog.Default()
	if cfg.Missions.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.Missions.CatalogPath)
		if err != nil {
			return err
		}
		logger.Info("mission catalog loaded", zap.String("path", cfg.Missions.CatalogPath), zap.Int("missions", cat.Len()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := live.NewHub(logger)
	go hub.Run(ctx)

	selector := quest.NewSelector(st, cat, cfg.Missions.DailyCount, cfg.Missions.ResetHour, logger, func() {
		hub.Broadcast("missions-reset", nil)
	})
	go selector.Run(ctx, cfg.Missions.CheckInterval)

	ledger := quest.NewLedger(st, cfg.Admin.Username, logger)
	lifecycle := quest.NewLifecycle(st, cat, ledger, logger, func() {
		hub.Broadcast("leaderboard-update", nil)
	})

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiration)
	gate := auth.NewGate(st, jwtManager, cfg.Admin.Username, logger)

	handler := handlers.New(gate, jwtManager, selector, lifecycle, ledger, st,
		weather.NewMockProvider(time.Now().UnixNano()),
		vision.NewMockClassifier(time.Now().UnixNano()),
		geo.NewNominatim(cfg.Geocoder.BaseURL, cfg.Geocoder.Timeout),
		hub, cfg.Geocoder.FallbackAddress, logger)

	router := mux.NewRouter()
	handler.Routes(router)

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zapCfg.Build()
}
