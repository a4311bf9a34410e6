package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ffaiyaz23/antisell/internal/config"
	"github.com/ffaiyaz23/antisell/internal/filter"
	"github.com/ffaiyaz23/antisell/internal/groupme"
	"github.com/ffaiyaz23/antisell/internal/logger"
	"github.com/ffaiyaz23/antisell/internal/moderation"
	"github.com/ffaiyaz23/antisell/internal/otel"
	"github.com/ffaiyaz23/antisell/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 0) Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// 1) Refuse to run with placeholder credentials
	if missing := cfg.Placeholders(); len(missing) > 0 {
		fmt.Print(config.SetupInstructions(missing))
		return
	}

	// 2) Initialize OpenTelemetry tracing
	ctx := context.Background()
	tp, err := otel.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		// no logger yet
		panic("failed to init OTEL: " + err.Error())
	}
	defer func() { _ = tp.Shutdown(ctx) }()

	// 3) Initialize Zap logger and replace globals
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	// 4) Auto-start the fake GroupMe API when asked to
	apiURL := cfg.APIURL
	if apiURL == config.MockAPIURL {
		mock, addr, err := groupme.StartMockServer("127.0.0.1:0")
		if err != nil {
			zap.S().Fatalw("mock groupme api failed to start", "error", err)
		}
		defer mock.Close()
		apiURL = "http://" + addr
	}
	zap.S().Infow("using groupme api", "url", apiURL)

	// 5) Wire filter, client and moderation service
	client := groupme.NewClient(apiURL, cfg.AccessToken, cfg.BotToken, groupme.WithTimeout(cfg.HTTPTimeout))
	svc := moderation.NewService(moderation.Options{
		GroupID:         cfg.GroupID,
		NotifyOnDelete:  cfg.NotifyOnDelete,
		WarningTemplate: cfg.WarningTemplate,
	}, filter.New(cfg.Words()), client, client)

	zap.S().Infow("🤖 anti-sell bot starting",
		"group_id", svc.GroupID(),
		"banned_words", strings.Join(svc.BannedWords(), ", "),
		"notify_on_delete", cfg.NotifyOnDelete,
	)

	// 6) Start HTTP server
	srv := server.NewServer(cfg.Addr(), svc, cfg.Presence())
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		zap.S().Errorw("graceful shutdown failed", "error", err)
	}
}
