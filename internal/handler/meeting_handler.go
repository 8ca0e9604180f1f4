package handler

import (
	"net/http"

	"clubhub/internal/domain/meeting"
	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// MeetingHandler handles meeting record HTTP endpoints.
type MeetingHandler struct {
	service *services.MeetingService
}

func NewMeetingHandler(service *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{service: service}
}

func (h *MeetingHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req httpdto.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	r, err := h.service.Create(c.Request.Context(), p, services.MeetingInput{
		MeetingDate:  req.MeetingDate,
		RecorderName: req.RecorderName,
		Content:      req.Content,
	}, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toMeetingDTO(r)))
}

func (h *MeetingHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.MeetingDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, toMeetingDTO(r))
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.MeetingsResponse{Meetings: dtos}))
}

func (h *MeetingHandler) Get(c *gin.Context) {
	r, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toMeetingDTO(r)))
}

func (h *MeetingHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req httpdto.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	r, err := h.service.Update(c.Request.Context(), p, c.Param("id"), services.MeetingInput{
		MeetingDate:  req.MeetingDate,
		RecorderName: req.RecorderName,
		Content:      req.Content,
	}, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toMeetingDTO(r)))
}

func (h *MeetingHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, c.Param("id"), requestMeta(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}

func toMeetingDTO(r meeting.Record) httpdto.MeetingDTO {
	return httpdto.MeetingDTO{
		ID:           r.ID,
		MeetingDate:  r.MeetingDate,
		RecorderName: r.RecorderName,
		Content:      r.Content,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
