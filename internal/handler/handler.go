package handler

import (
	"context"

	"market-mood/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type SnapshotGetter interface {
	GetSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

type Handler struct {
	tracer    trace.Tracer
	sentiment SnapshotGetter
}

func New(tracer trace.Tracer, sentiment SnapshotGetter) *Handler {
	return &Handler{
		tracer:    tracer,
		sentiment: sentiment,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/sentiment", h.GetSentiment)
	r.GET("/api/sentiment/indicators", h.GetIndicators)
}
