package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetSentiment godoc
// @Summary      Get the current Fear & Greed snapshot
// @Description  Returns the current index reading, a year of daily history, and the component indicators
// @Tags         sentiment
// @Produce      json
// @Success      200  {object}  domain.Snapshot
// @Failure      502  {object}  map[string]string
// @Router       /api/sentiment [get]
func (h *Handler) GetSentiment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-sentiment")
	defer span.End()

	snap, err := h.sentiment.GetSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(
		attribute.Float64("sentiment.score", snap.Current.Score),
		attribute.String("sentiment.band", snap.Current.Band.String()),
	)

	c.JSON(http.StatusOK, snap)
}

// GetIndicators godoc
// @Summary      Get the component indicators
// @Description  Returns the seven component indicators present in the latest fetch, in display order
// @Tags         sentiment
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /api/sentiment/indicators [get]
func (h *Handler) GetIndicators(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-indicators")
	defer span.End()

	snap, err := h.sentiment.GetSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"indicators": snap.Indicators})
}
