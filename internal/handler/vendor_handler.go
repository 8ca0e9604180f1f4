package handler

import (
	"net/http"

	"clubhub/internal/domain/vendor"
	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// VendorHandler handles vendor HTTP endpoints.
type VendorHandler struct {
	service *services.VendorService
}

func NewVendorHandler(service *services.VendorService) *VendorHandler {
	return &VendorHandler{service: service}
}

func (h *VendorHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req httpdto.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	v, err := h.service.Create(c.Request.Context(), p, services.VendorInput{
		Name:        req.Name,
		Email:       req.Email,
		Type:        req.Type,
		Description: req.Description,
	}, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toVendorDTO(v)))
}

func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.service.List(c.Request.Context(), vendor.Filter{
		Type:   c.Query("type"),
		Search: c.Query("search"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.VendorDTO, 0, len(vendors))
	for _, v := range vendors {
		dtos = append(dtos, toVendorDTO(v))
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.VendorsResponse{Vendors: dtos}))
}

func (h *VendorHandler) Get(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toVendorDTO(v)))
}

func (h *VendorHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req httpdto.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	v, err := h.service.Update(c.Request.Context(), p, c.Param("id"), services.VendorInput{
		Name:        req.Name,
		Email:       req.Email,
		Type:        req.Type,
		Description: req.Description,
	}, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(toVendorDTO(v)))
}

func (h *VendorHandler) Delete(c *gin.Context) {
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

// DeleteAll wipes every vendor. Admin only.
func (h *VendorHandler) DeleteAll(c *gin.Context) {
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

func toVendorDTO(v vendor.Vendor) httpdto.VendorDTO {
	return httpdto.VendorDTO{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		Type:        v.Type,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
