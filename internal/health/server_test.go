package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestServer_Health(t *testing.T) {
	s := NewServer(":0", func() Status {
		return Status{
			Uptime:           90 * time.Second,
			Subscribers:      3,
			PendingReminders: 2,
			BroadcastCycles:  7,
			HeapBytes:        1024,
			Goroutines:       12,
		}
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(90), body["uptime_seconds"])
	assert.Equal(t, float64(3), body["subscribers"])
	assert.Equal(t, float64(2), body["pending_reminders"])
	assert.Equal(t, float64(7), body["broadcast_cycles"])
	assert.Equal(t, float64(1024), body["heap_bytes"])
}

func TestServer_UnknownRoute(t *testing.T) {
	s := NewServer(":0", func() Status { return Status{} })

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCollect(t *testing.T) {
	st := Collect(time.Now().Add(-2*time.Minute), 4, 1, 9)

	assert.GreaterOrEqual(t, st.Uptime, 2*time.Minute)
	assert.Equal(t, 4, st.Subscribers)
	assert.Equal(t, 1, st.PendingReminders)
	assert.Equal(t, int64(9), st.BroadcastCycles)
	assert.Positive(t, st.HeapBytes)
	assert.Positive(t, st.Goroutines)
}

func TestStatus_HeapMB(t *testing.T) {
	assert.Equal(t, "1.5 MB", Status{HeapBytes: 3 << 19}.HeapMB())
}
