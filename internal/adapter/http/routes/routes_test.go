package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"po_tracker/internal/config"
	"po_tracker/internal/infrastructure/clock"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Store:   config.StoreConfig{Driver: config.StoreDriverMemory},
		Lock:    config.LockConfig{Mode: config.LockModeLocal},
		Metrics: config.MetricsConfig{ResponseTimeScope: "global"},
	}
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T, clk *clock.Fixed) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a, err := buildApp(context.Background(), memoryConfig(), prometheus.NewRegistry(), clk)
	require.NoError(t, err)
	t.Cleanup(a.close)

	return &testServer{t: t, router: newRouter(zap.NewNop(), a)}
}

func (s *testServer) do(method, path string, body any) (int, []byte) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

func TestPing(t *testing.T) {
	s := newTestServer(t, clock.NewFixed(time.Now().UTC()))
	code, body := s.do(http.MethodGet, "/v1/ping", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"pong"}`, string(body))
}

func TestPurchaseOrderLifecycleOverHTTP(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(t0)
	s := newTestServer(t, clk)

	code, _ := s.do(http.MethodPost, "/v1/vendors", gin.H{"vendor_code": "V1", "name": "Acme", "contact_details": "ops@acme.test", "address": "1 Main St"})
	require.Equal(t, http.StatusCreated, code)

	code, body := s.do(http.MethodPost, "/v1/purchase_orders", gin.H{
		"po_number": "PO001",
		"vendor":    "V1",
		"items":     []gin.H{{"sku": "A-1", "qty": 3}},
		"quantity":  3,
	})
	require.Equal(t, http.StatusCreated, code, string(body))

	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "pending", created["status"])
	assert.Nil(t, created["acknowledgment_date"])
	assert.Nil(t, created["quality_rating"])

	code, _ = s.do(http.MethodPut, "/v1/purchase_orders/PO001", gin.H{"quality_rating": 4})
	assert.Equal(t, http.StatusMethodNotAllowed, code)

	clk.Advance(2 * time.Hour)
	code, _ = s.do(http.MethodPost, "/v1/purchase_orders/PO001/acknowledge", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPost, "/v1/purchase_orders/PO001/acknowledge", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, code)

	var perf map[string]float64
	_, body = s.do(http.MethodGet, "/v1/vendors/V1/performance", nil)
	require.NoError(t, json.Unmarshal(body, &perf))
	assert.InDelta(t, 2.0, perf["average_response_time"], 1e-9)

	clk.Advance(time.Hour)
	code, body = s.do(http.MethodPut, "/v1/purchase_orders/PO001", gin.H{"quality_rating": 5, "status": "completed"})
	require.Equal(t, http.StatusOK, code, string(body))

	_, body = s.do(http.MethodGet, "/v1/vendors/V1/performance", nil)
	require.NoError(t, json.Unmarshal(body, &perf))
	assert.InDelta(t, 5.0, perf["quality_rating_avg"], 1e-9)
	assert.Equal(t, 0.0, perf["on_time_delivery_rate"])
	assert.Equal(t, 0.0, perf["fulfillment_rate"])

	clk.Advance(time.Hour)
	code, _ = s.do(http.MethodPut, "/v1/purchase_orders/PO001", gin.H{})
	require.Equal(t, http.StatusOK, code)

	_, body = s.do(http.MethodGet, "/v1/vendors/V1/performance", nil)
	require.NoError(t, json.Unmarshal(body, &perf))
	assert.InDelta(t, 1.0, perf["on_time_delivery_rate"], 1e-9)
	assert.InDelta(t, 1.0, perf["fulfillment_rate"], 1e-9)

	var history []map[string]any
	_, body = s.do(http.MethodGet, "/v1/vendors/V1/history", nil)
	require.NoError(t, json.Unmarshal(body, &history))
	assert.NotEmpty(t, history)

	code, _ = s.do(http.MethodDelete, "/v1/vendors/V1", nil)
	require.Equal(t, http.StatusNoContent, code)

	code, _ = s.do(http.MethodGet, "/v1/purchase_orders/PO001", nil)
	assert.Equal(t, http.StatusNotFound, code)

	var kept []map[string]any
	_, body = s.do(http.MethodGet, "/v1/vendors/V1/history", nil)
	require.NoError(t, json.Unmarshal(body, &kept))
	assert.Len(t, kept, len(history))
}

func TestCreatePurchaseOrderForUnknownVendor(t *testing.T) {
	s := newTestServer(t, clock.NewFixed(time.Now().UTC()))

	code, _ := s.do(http.MethodPost, "/v1/purchase_orders", gin.H{"vendor": "NOPE", "items": []int{1}, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, code)

	var orders []map[string]any
	_, body := s.do(http.MethodGet, "/v1/purchase_orders", nil)
	require.NoError(t, json.Unmarshal(body, &orders))
	assert.Empty(t, orders)
}
