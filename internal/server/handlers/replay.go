package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/txe/internal/application/replayservice"
	"github.com/tuncanbit/txe/internal/infrastructure/csvio"
)

// ReplayHandler exposes the batch replay over HTTP. Each request is an
// independent run from empty state; nothing is shared between requests.
type ReplayHandler struct {
	replaySvc replayservice.IReplayService
	logger    zerolog.Logger
}

func NewReplayHandler(replaySvc replayservice.IReplayService, logger zerolog.Logger) *ReplayHandler {
	return &ReplayHandler{
		replaySvc: replaySvc,
		logger:    logger,
	}
}

// Replay accepts a transaction log as the raw request body or as a multipart
// upload under the "file" field, replays it and responds with the account
// snapshot. The default response is CSV; ?format=json returns the snapshot
// rows plus diagnostic counters.
func (h *ReplayHandler) Replay(c *gin.Context) {
	requestID := uuid.New().String()
	c.Header("X-Run-ID", requestID)

	logger := h.logger.With().Str("request_id", requestID).Logger()

	input, err := h.openInput(c)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read transaction log")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Failed to read transaction log",
			"request_id": requestID,
		})
		return
	}
	defer input.Close()

	records, stats, err := h.replaySvc.RunSnapshot(input)
	if err != nil {
		logger.Error().Err(err).Msg("Replay aborted")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      err.Error(),
			"request_id": requestID,
		})
		return
	}

	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{
			"accounts":   records,
			"stats":      stats,
			"request_id": requestID,
		})
		return
	}

	var buf bytes.Buffer
	if err := csvio.WriteSnapshot(&buf, records); err != nil {
		logger.Error().Err(err).Msg("Failed to serialize snapshot")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Failed to serialize snapshot",
			"request_id": requestID,
		})
		return
	}

	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *ReplayHandler) openInput(c *gin.Context) (io.ReadCloser, error) {
	file, err := c.FormFile("file")
	if err == nil {
		return file.Open()
	}
	return c.Request.Body, nil
}
