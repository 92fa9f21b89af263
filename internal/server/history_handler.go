package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
	historydomain "github.com/chaitanyamurarka/trading-platform-v5/internal/domain/history"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/util"
)

// errorResponse is the JSON body returned on any handler failure.
type errorResponse struct {
	Detail string `json:"detail"`
}

// newSession issues a fresh session token for the caller. Tokens scope the
// per-user 1-second snapshot cache.
func (s *Server) newSession(c *gin.Context) {
	c.JSON(http.StatusOK, candle.SessionInfo{SessionToken: util.NewSessionToken()})
}

// getHistorical serves the initial historical fetch for a symbol and interval.
func (s *Server) getHistorical(c *gin.Context) {
	ctx := util.WithRequestID(c.Request.Context(), util.NewRequestID())

	start, err := time.Parse(time.RFC3339, c.Query("start_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "start_time must be RFC3339"})
		return
	}

	end, err := time.Parse(time.RFC3339, c.Query("end_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "end_time must be RFC3339"})
		return
	}

	params := historydomain.FetchParams{
		SessionToken: c.Query("session_token"),
		Exchange:     c.Param("exchange"),
		Symbol:       c.Param("symbol"),
		Interval:     c.Param("interval"),
		Start:        start,
		End:          end,
		Timezone:     c.DefaultQuery("timezone", "UTC"),
	}

	res, err := s.history.GetInitial(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, err,
			logger.NewField("symbol", params.Symbol),
			logger.NewField("interval", params.Interval),
		)
		c.JSON(statusFromError(err), errorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// getHistoricalChunk pages through a previously built snapshot.
func (s *Server) getHistoricalChunk(c *gin.Context) {
	ctx := util.WithRequestID(c.Request.Context(), util.NewRequestID())

	requestID := c.Query("request_id")
	if requestID == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "request_id is required"})
		return
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "offset must be an integer"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(s.chunkLimit)))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: "limit must be a positive integer"})
		return
	}

	res, err := s.history.GetChunk(ctx, requestID, offset, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, err,
			logger.NewField("fetch_request_id", requestID),
		)
		c.JSON(statusFromError(err), errorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}
