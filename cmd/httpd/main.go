// Command httpd runs the tender agent HTTP service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/EpikourosNafplio/tenderagent-msp/internal/api"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/classifier"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/config"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/history"
	"github.com/EpikourosNafplio/tenderagent-msp/internal/logger"
)

func main() {
	cfgPath := config.GetConfigPath("config.yml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		// No logger yet; fall back to a throwaway one.
		logger.Must(logger.Config{Level: "error"}).
			Fatal("failed to load configuration", logger.Error(err))
	}

	log := logger.Must(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	defer func() { _ = log.Sync() }()

	log.Info("starting tender agent",
		logger.String("service", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port))

	rules := classifier.NewRuleSet(&cfg.Rules)
	pipeline := classifier.NewPipeline(rules, log)
	log.Info("rule set compiled", logger.String("rules_version", rules.Version))

	store, err := history.Open(cfg.Dataset.Path, pipeline, log, history.Options{
		RepeatMinYears: cfg.Dataset.RepeatMinYears,
		RepeatMaxYears: cfg.Dataset.RepeatMaxYears,
		LeadMonths:     cfg.Dataset.LeadMonths,
	})
	if err != nil {
		log.Fatal("failed to open historical dataset", logger.Error(err))
	}
	defer func() { _ = store.Close() }()

	metrics := api.NewMetrics()
	handler := api.NewHandler(pipeline, store, cfg, metrics, log)
	server := api.NewServer(handler, cfg)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", logger.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", logger.Error(err))
		}
	case sig := <-quit:
		log.Info("shutting down", logger.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", logger.Error(err))
		}
	}

	log.Info("stopped")
}
