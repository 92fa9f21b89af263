package server

import (
	"context"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
	streamdomain "github.com/chaitanyamurarka/trading-platform-v5/internal/domain/stream"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/util"
)

// wsSink adapts a websocket connection to the orchestrator's output interface.
// gorilla/websocket allows one concurrent writer, so writes are serialized.
type wsSink struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *wsSink) SendBatch(ctx context.Context, msg candle.BatchMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(msg)
}

func (s *wsSink) SendUpdate(ctx context.Context, msg candle.StreamMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(msg)
}

// streamLive upgrades the connection and hands it to the stream orchestrator.
// The connection's read side is drained in the background; a read error is the
// disconnect signal and cancels the orchestrator's context.
func (s *Server) streamLive(c *gin.Context) {
	ctx := util.WithRequestID(c.Request.Context(), util.NewRequestID())

	params := streamdomain.Params{
		Symbol:   c.Param("symbol"),
		Interval: c.Param("interval"),
		Timezone: strings.TrimPrefix(c.Param("timezone"), "/"),
	}
	if params.Timezone == "" {
		params.Timezone = "UTC"
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.WarnContext(ctx, "websocket upgrade failed",
			logger.NewField("symbol", params.Symbol),
			logger.NewField("error", err.Error()),
		)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := s.orchestrator.Run(ctx, params, &wsSink{conn: conn}); err != nil {
		s.logger.ErrorContext(ctx, err,
			logger.NewField("symbol", params.Symbol),
			logger.NewField("interval", params.Interval),
		)
	}
}
