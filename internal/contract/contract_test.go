package contract_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"goyard/internal/contract"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		params map[string]string
		want   string
	}{
		{"substitui id", "/api/warehouses/:id", map[string]string{"id": "7"}, "/api/warehouses/7"},
		{"sem placeholders", "/api/stats", nil, "/api/stats"},
		{"parâmetro extra ignorado", "/api/yards/:id", map[string]string{"id": "3", "foo": "bar"}, "/api/yards/3"},
		{"placeholder sem valor fica intacto", "/api/yards/:id", map[string]string{}, "/api/yards/:id"},
		{"vários placeholders", "/a/:x/b/:y", map[string]string{"x": "1", "y": "2"}, "/a/1/b/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contract.BuildURL(tt.path, tt.params))
		})
	}
}

func TestRoute_Pattern(t *testing.T) {
	assert.Equal(t, "GET /api/warehouses/{id}", contract.API.Warehouses.Get.Pattern())
	assert.Equal(t, "POST /api/yards", contract.API.Yards.Create.Pattern())
	assert.Equal(t, "GET /api/reports/facilities.xlsx", contract.API.Reports.Facilities.Pattern())
}

func TestRoute_SuccessStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, contract.API.Warehouses.List.SuccessStatus())
	assert.Equal(t, http.StatusCreated, contract.API.Warehouses.Create.SuccessStatus())
	assert.Equal(t, http.StatusNoContent, contract.API.Yards.Delete.SuccessStatus())
}

func TestRoute_PathParams(t *testing.T) {
	assert.Equal(t, []string{"id"}, contract.API.Yards.Update.PathParams())
	assert.Empty(t, contract.API.Stats.Get.PathParams())
}

func TestAPI_RoutesAreUniqueAndComplete(t *testing.T) {
	routes := contract.API.Routes()
	assert.Len(t, routes, 12)

	patterns := map[string]bool{}
	names := map[string]bool{}
	for _, r := range routes {
		assert.False(t, patterns[r.Pattern()], "padrão duplicado: %s", r.Pattern())
		assert.False(t, names[r.Name], "nome duplicado: %s", r.Name)
		patterns[r.Pattern()] = true
		names[r.Name] = true
		assert.NotEmpty(t, r.Responses, "rota sem respostas: %s", r.Name)
	}

	for _, want := range []string{
		"GET /api/warehouses", "GET /api/warehouses/{id}", "POST /api/warehouses",
		"PUT /api/warehouses/{id}", "DELETE /api/warehouses/{id}",
		"GET /api/yards", "GET /api/yards/{id}", "POST /api/yards",
		"PUT /api/yards/{id}", "DELETE /api/yards/{id}",
		"GET /api/stats",
	} {
		assert.True(t, patterns[want], "rota ausente: %s", want)
	}
}

func TestAPI_WriteRoutesDeclareInput(t *testing.T) {
	for _, r := range contract.API.Routes() {
		switch r.Method {
		case http.MethodPost, http.MethodPut:
			assert.NotNil(t, r.Input, r.Name)
		default:
			assert.Nil(t, r.Input, r.Name)
		}
	}
}
