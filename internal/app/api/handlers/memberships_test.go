package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gympoint/backoffice/pkg/config"
)

func TestApiEnroll_RejectsMalformedStartDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Timezone: "UTC"}
	r := gin.New()
	r.POST("/api/v1/memberships", ApiEnroll(nil, cfg))

	body, _ := json.Marshal(map[string]any{"student_id": "s-1", "plan_id": "p-1", "start_date": "12/01/2026"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/memberships", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "40000")
	require.Contains(t, w.Body.String(), "start_date")
}

func TestParseStartDate_UsesConfiguredZone(t *testing.T) {
	cfg := &config.Config{Timezone: "America/Sao_Paulo"}
	got, err := parseStartDate(cfg, "2026-01-12")
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	require.True(t, got.Equal(time.Date(2026, 1, 12, 0, 0, 0, 0, loc)))
}
