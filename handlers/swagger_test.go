package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSwaggerEndpoints(t *testing.T) {
	g := gin.New()
	RegisterSwagger(g, "/api")

	req := httptest.NewRequest("GET", "/swagger/index.html", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), "swagger-ui")

	req2 := httptest.NewRequest("GET", "/swagger/doc.json", nil)
	w2 := httptest.NewRecorder()
	g.ServeHTTP(w2, req2)
	require.Equal(t, 200, w2.Code)
	require.Contains(t, w2.Header().Get("Content-Type"), "application/json")

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &doc))
	require.Equal(t, "3.0.0", doc.OpenAPI)
	// content endpoints are documented under the configured prefix
	require.Contains(t, doc.Paths, "/api/portfolio")
	require.Contains(t, doc.Paths["/api/portfolio/{id}"], "delete")
	require.Contains(t, doc.Paths, "/api/contact/{id}/status")
	require.Contains(t, doc.Paths, "/health")
}

func TestSwaggerEndpoints_EmptyPrefix(t *testing.T) {
	g := gin.New()
	RegisterSwagger(g, "")

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"/stats/{id}"`)
	require.NotContains(t, w.Body.String(), "{{prefix}}")
}
