// Package server exposes the HTTP and WebSocket surface: historical fetches,
// chunk paging, session tokens, and the live candle stream.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	historydomain "github.com/chaitanyamurarka/trading-platform-v5/internal/domain/history"
	streamdomain "github.com/chaitanyamurarka/trading-platform-v5/internal/domain/stream"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/errors"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
)

// Server is the HTTP/WebSocket server for the chart data service.
type Server struct {
	engine       *gin.Engine
	history      historydomain.Usecase
	orchestrator streamdomain.Orchestrator
	logger       logger.Interface
	chunkLimit   int
	upgrader     websocket.Upgrader
}

// New creates the server and registers its routes.
func New(history historydomain.Usecase, orchestrator streamdomain.Orchestrator, logger logger.Interface, chunkLimit int) *Server {
	s := &Server{
		engine:       gin.New(),
		history:      history,
		orchestrator: orchestrator,
		logger:       logger,
		chunkLimit:   chunkLimit,
		upgrader: websocket.Upgrader{
			// The charting frontend is served from arbitrary origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	s.engine.Use(gin.Recovery())
	s.registerRoutes()

	return s
}

// Handler returns the http.Handler to serve.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/utils/session", s.newSession)
	s.engine.GET("/historical/:exchange/:symbol/:interval", s.getHistorical)
	s.engine.GET("/historical/chunk", s.getHistoricalChunk)
	s.engine.GET("/ws/live/:symbol/:interval/*timezone", s.streamLive)
}

// statusFromError maps the usecase error taxonomy onto HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.ErrorCodeEquals(err, string(errors.SnapshotNotFoundError)):
		return http.StatusNotFound
	case errors.ErrorCodeEquals(err, string(errors.InvalidIntervalError)),
		errors.ErrorCodeEquals(err, string(errors.GeneralBadRequestError)):
		return http.StatusBadRequest
	case errors.ErrorCodeEquals(err, string(errors.StoreUnavailableError)):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
