package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goyard/internal/api/respond"
	"goyard/internal/domain"
	apperror "goyard/internal/errors"
	"goyard/internal/pkg/logger"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var body domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandle_Success(t *testing.T) {
	rw := respond.NewWriter(logger.NewNopLogger())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)

	rw.Handle(rec, req, domain.SystemStats{TotalWarehouses: 2}, nil, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"totalWarehouses":2,"totalYards":0,"activeWarehouses":0,"activeYards":0}`, rec.Body.String())
}

func TestHandle_NoContent(t *testing.T) {
	rw := respond.NewWriter(logger.NewNopLogger())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/yards/1", nil)

	rw.Handle(rec, req, nil, nil, http.StatusNoContent)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandle_ValidationErrorCarriesField(t *testing.T) {
	rw := respond.NewWriter(logger.NewNopLogger())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/warehouses", nil)

	rw.Handle(rec, req, nil, apperror.NewFieldValidationError("code", "O campo 'code' é obrigatório."), http.StatusCreated)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "code", body.Field)
	assert.Equal(t, "VALIDATION_ERROR", body.Category)
	assert.Equal(t, "O campo 'code' é obrigatório.", body.Message)
}

func TestHandle_InternalErrorHidesDetail(t *testing.T) {
	rw := respond.NewWriter(logger.NewNopLogger())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/warehouses", nil)

	rw.Handle(rec, req, nil, apperror.NewDBError("Falha", errors.New("pq: password authentication failed")), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Equal(t, apperror.GenericInternalMessage, decodeError(t, rec).Message)
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"9007199254740993", 9007199254740993, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/warehouses/x", nil)
		req.SetPathValue("id", tt.raw)

		id, err := respond.PathID(req, "id")
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			assert.Equal(t, "id", apperror.FieldOf(err))
			continue
		}
		assert.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, id)
	}
}

func TestQueryID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/yards", nil)
	id, err := respond.QueryID(req, "warehouseId")
	assert.NoError(t, err)
	assert.Nil(t, id)

	req = httptest.NewRequest(http.MethodGet, "/api/yards?warehouseId=2", nil)
	id, err = respond.QueryID(req, "warehouseId")
	require.NoError(t, err)
	assert.Equal(t, int64(2), *id)

	req = httptest.NewRequest(http.MethodGet, "/api/yards?warehouseId=x", nil)
	_, err = respond.QueryID(req, "warehouseId")
	assert.Equal(t, "warehouseId", apperror.FieldOf(err))
}

func TestReadBody_TooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/warehouses", strings.NewReader(strings.Repeat("a", respond.MaxBodyBytes+1)))

	_, err := respond.ReadBody(rec, req)

	assert.IsType(t, &apperror.ValidationError{}, err)
}
