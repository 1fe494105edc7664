package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/logger"
	"github.com/nikol804/dotapost/internal/middleware"
	"github.com/nikol804/dotapost/internal/service"
)

// ExportHandler streams the moderation audit log.
type ExportHandler struct {
	moderationService service.ModerationServiceInterface
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(moderationService service.ModerationServiceInterface) *ExportHandler {
	return &ExportHandler{
		moderationService: moderationService,
	}
}

// StreamExportRequest represents query parameters for streaming export.
type StreamExportRequest struct {
	Format     string `form:"format" binding:"omitempty,oneof=csv ndjson"`
	TargetType string `form:"target_type" binding:"omitempty,oneof=post comment"`
	TargetID   string `form:"target_id" binding:"omitempty,uuid"`
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// StreamActions handles GET /api/v1/moderation/actions?format=...&target_type=...&target_id=...
func (h *ExportHandler) StreamActions(c *gin.Context) {
	ctx := c.Request.Context()
	id := middleware.GetIdentity(c)

	// Non-moderators get 404 whatever the query string holds.
	if _, err := h.moderationService.Authorize(ctx, id); err != nil {
		writeError(c, err)
		return
	}

	var req StreamExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	// Default format is ndjson
	if req.Format == "" {
		req.Format = domain.FormatNDJSON
	}

	log := logger.WithRequestID(middleware.GetRequestID(c))

	// An export runs until the log is exhausted, past the server write timeout.
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil {
		log.Debug("Write deadline not cleared", zap.Error(err))
	}

	log.Info("Streaming moderation actions",
		zap.String("format", req.Format),
		zap.String("target_type", req.TargetType),
		zap.String("target_id", req.TargetID),
	)

	contentType := "application/x-ndjson"
	if req.Format == domain.FormatCSV {
		contentType = "text/csv"
	}

	c.Header("Content-Type", contentType)
	c.Header("Transfer-Encoding", "chunked")
	c.Header("X-Content-Type-Options", "nosniff")

	filename := "moderation-actions-" + time.Now().UTC().Format(FileDateFormat) + "." + req.Format
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Status(http.StatusOK)

	filter := domain.ModerationActionFilter{
		TargetType: domain.TargetType(req.TargetType),
		TargetID:   req.TargetID,
	}
	count, err := h.moderationService.StreamActions(ctx, filter, req.Format, &ginStreamWriter{writer: c.Writer})
	if err != nil {
		// Headers are already sent; the truncated body is all the client gets.
		log.Error("Streaming moderation actions failed", zap.Int("count", count), zap.Error(err))
		return
	}

	log.Info("Streaming moderation actions completed", zap.Int("count", count))
}
