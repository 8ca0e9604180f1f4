package handler

import (
	"net/http"
	"strconv"

	"clubhub/internal/domain/auditlog"
	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuditLogHandler handles operation log HTTP endpoints. All routes
// require the admin role, enforced by middleware.
type AuditLogHandler struct {
	service *services.AuditService
}

func NewAuditLogHandler(service *services.AuditService) *AuditLogHandler {
	return &AuditLogHandler{service: service}
}

// List queries operation logs with filters and pagination.
func (h *AuditLogHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))

	filter := auditlog.Filter{
		Username:  c.Query("user"),
		Action:    c.Query("action"),
		Keyword:   c.Query("keyword"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	result, err := h.service.Query(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.AuditLogDTO, 0, len(result.Entries))
	for _, e := range result.Entries {
		dtos = append(dtos, httpdto.AuditLogDTO{
			ID:          e.ID,
			UserID:      e.UserID,
			Username:    e.Username,
			Action:      e.Action,
			Description: e.Description,
			Details:     e.Details,
			IPAddress:   e.IPAddress,
			UserAgent:   e.UserAgent,
			CreatedAt:   e.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.AuditLogsResponse{
		Logs:     dtos,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	}))
}

// Delete removes a single operation log entry.
func (h *AuditLogHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), p, c.Param("id"), requestMeta(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}

// DeleteAll wipes the operation log.
func (h *AuditLogHandler) DeleteAll(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteAll(c.Request.Context(), p, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.DeleteAllResponse{DeletedCount: deleted}))
}
