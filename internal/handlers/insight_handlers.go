package handlers

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"estoque_facil_backend/internal/services"
	"estoque_facil_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// insightTimeout bounds how long a single insight generation may take.
// The collaborator must never block the rest of the dashboard.
const insightTimeout = 20 * time.Second

// InsightHandler runs the AI collaborator over the current collections.
// Each response carries a monotonically increasing sequence number so
// the client can discard stale responses that arrive after a newer
// request was issued (cancellable-by-ignore).
type InsightHandler struct {
	insightService services.InsightService
	store          *store.Store
	seq            atomic.Uint64
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(is services.InsightService, st *store.Store) *InsightHandler {
	return &InsightHandler{insightService: is, store: st}
}

// GetInsights generates the three strategic notes. Failures degrade to
// placeholder text inside the service; this endpoint never errors.
func (h *InsightHandler) GetInsights(c *gin.Context) {
	seq := h.seq.Add(1)

	ctx, cancel := context.WithTimeout(c.Request.Context(), insightTimeout)
	defer cancel()

	insights := h.insightService.GenerateInsights(ctx, h.store.Products(), h.store.Sales())
	c.JSON(http.StatusOK, gin.H{
		"seq":           seq,
		"stock_alert":   insights.StockAlert,
		"sales_insight": insights.SalesInsight,
		"action_tip":    insights.ActionTip,
	})
}
