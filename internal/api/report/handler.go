package report

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"goyard/internal/api/respond"
	"goyard/internal/contract"
	"goyard/internal/pkg/logger"
	"goyard/internal/pkg/report"
)

type ReportService interface {
	ExportFacilities(ctx context.Context) ([]byte, error)
}

type Handler struct {
	Service ReportService
	Logger  logger.Logger
	resp    *respond.Writer
}

func NewHandler(svc ReportService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log, resp: respond.NewWriter(log)}
}

// ExportFacilitiesHandler lida com GET /api/reports/facilities.xlsx.
func (h *Handler) ExportFacilitiesHandler(w http.ResponseWriter, r *http.Request) {
	content, err := h.Service.ExportFacilities(r.Context())
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	filename := fmt.Sprintf("instalacoes-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(contract.API.Reports.Facilities.SuccessStatus())
	if _, err := w.Write(content); err != nil {
		h.Logger.Error("Falha ao enviar planilha.", err)
	}
}
