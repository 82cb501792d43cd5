package main

import (
	"context"
	"log"
	"os"
	"time"

	"market-mood/internal/cache"
	"market-mood/internal/config"
	"market-mood/internal/provider"
	"market-mood/internal/service"
	"market-mood/internal/tui"
	"market-mood/pkg/tracing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initRedisFunc  = cache.InitRedis
	initTracerFunc = tracing.InitTracer

	newFearGreedProviderFunc = func(tracer trace.Tracer) service.GraphDataProvider {
		return provider.NewFearGreedProvider(tracer)
	}
	newSentimentServiceFunc = service.NewSentimentService

	runProgramFunc = func(model tea.Model) error {
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	}
)

// The local variant of the dashboard: same model the SSH server serves,
// rendered in the current terminal.
func main() {
	loadEnvFunc()
	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	fgProvider := newFearGreedProviderFunc(tracer)
	var redisClient service.RedisClient
	if cache.Client != nil {
		redisClient = cache.Client
	}
	sentimentService := newSentimentServiceFunc(tracer, fgProvider, redisClient,
		time.Duration(cfg.SnapshotTTLSecs)*time.Second)

	if err := runProgramFunc(tui.NewModel(sentimentService)); err != nil {
		log.Fatalf("dashboard error: %v", err)
	}
}
