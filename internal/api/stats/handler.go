package stats

import (
	"context"
	"net/http"

	"goyard/internal/api/respond"
	"goyard/internal/contract"
	"goyard/internal/domain"
	"goyard/internal/pkg/logger"
)

type StatsService interface {
	GetSystemStats(ctx context.Context) (domain.SystemStats, error)
}

type Handler struct {
	Service StatsService
	resp    *respond.Writer
}

func NewHandler(svc StatsService, log logger.Logger) *Handler {
	return &Handler{Service: svc, resp: respond.NewWriter(log)}
}

// GetSystemStatsHandler lida com GET /api/stats.
func (h *Handler) GetSystemStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetSystemStats(r.Context())
	h.resp.Handle(w, r, stats, err, contract.API.Stats.Get.SuccessStatus())
}
