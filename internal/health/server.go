package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Status is a point-in-time view of the bot
type Status struct {
	Uptime           time.Duration
	Subscribers      int
	PendingReminders int
	BroadcastCycles  int64
	HeapBytes        uint64
	Goroutines       int
}

// StatusFunc produces the current status on demand
type StatusFunc func() Status

// Collect fills in the runtime figures around the bot counters
func Collect(started time.Time, subscribers, pending int, cycles int64) Status {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Status{
		Uptime:           time.Since(started).Truncate(time.Second),
		Subscribers:      subscribers,
		PendingReminders: pending,
		BroadcastCycles:  cycles,
		HeapBytes:        mem.HeapAlloc,
		Goroutines:       runtime.NumGoroutine(),
	}
}

// HeapMB formats heap usage for humans
func (s Status) HeapMB() string {
	return fmt.Sprintf("%.1f MB", float64(s.HeapBytes)/(1<<20))
}

// Server exposes /health over HTTP for liveness checks
type Server struct {
	router *gin.Engine
	srv    *http.Server
	status StatusFunc
}

// NewServer builds the router. Nothing listens until Start.
func NewServer(addr string, status StatusFunc) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		status: status,
		srv: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	s.setupRoutes()

	return s
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
}

func (s *Server) handleHealth(c *gin.Context) {
	st := s.status()
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"service":           "ron",
		"uptime_seconds":    int64(st.Uptime / time.Second),
		"subscribers":       st.Subscribers,
		"pending_reminders": st.PendingReminders,
		"broadcast_cycles":  st.BroadcastCycles,
		"heap_bytes":        st.HeapBytes,
		"goroutines":        st.Goroutines,
	})
}

// Start listens in the background. Listen errors other than a clean shutdown are logged.
func (s *Server) Start() {
	go func() {
		slog.Info("Health server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Health server stopped", "error", err)
		}
	}()
}

// Shutdown waits for in-flight requests up to the context deadline
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
