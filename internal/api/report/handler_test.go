package report_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"goyard/internal/api/report"
	apperror "goyard/internal/errors"
	"goyard/internal/pkg/logger"
	xlsx "goyard/internal/pkg/report"
)

type stubService struct {
	content []byte
	err     error
}

func (s stubService) ExportFacilities(ctx context.Context) ([]byte, error) {
	return s.content, s.err
}

func TestExportFacilitiesHandler_Headers(t *testing.T) {
	h := report.NewHandler(stubService{content: []byte("xlsx-bytes")}, logger.NewNopLogger())

	rec := httptest.NewRecorder()
	h.ExportFacilitiesHandler(rec, httptest.NewRequest(http.MethodGet, "/api/reports/facilities.xlsx", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsx.ContentType, rec.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename=instalacoes-\d{8}\.xlsx$`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "10", rec.Header().Get("Content-Length"))
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
}

func TestExportFacilitiesHandler_Failure(t *testing.T) {
	h := report.NewHandler(stubService{err: apperror.NewInternalError("Falha ao gerar planilha", errors.New("disk full"))}, logger.NewNopLogger())

	rec := httptest.NewRecorder()
	h.ExportFacilitiesHandler(rec, httptest.NewRequest(http.MethodGet, "/api/reports/facilities.xlsx", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), apperror.GenericInternalMessage)
	assert.NotContains(t, rec.Body.String(), "disk full")
}
