package handler

import (
	"net/http"

	"clubhub/internal/domain/link"
	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// LinkHandler handles shared link HTTP endpoints.
type LinkHandler struct {
	service *services.LinkService
}

func NewLinkHandler(service *services.LinkService) *LinkHandler {
	return &LinkHandler{service: service}
}

func (h *LinkHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req httpdto.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	l, err := h.service.Create(c.Request.Context(), p, services.LinkInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
	}, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toLinkDTO(l)))
}

func (h *LinkHandler) List(c *gin.Context) {
	links, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.LinkDTO, 0, len(links))
	for _, l := range links {
		dtos = append(dtos, toLinkDTO(l))
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.LinksResponse{Links: dtos}))
}

func (h *LinkHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req httpdto.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	l, err := h.service.Update(c.Request.Context(), p, c.Param("id"), services.LinkInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
	}, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toLinkDTO(l)))
}

func (h *LinkHandler) Delete(c *gin.Context) {
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

func toLinkDTO(l link.Link) httpdto.LinkDTO {
	return httpdto.LinkDTO{
		ID:          l.ID,
		Name:        l.Name,
		URL:         l.URL,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
