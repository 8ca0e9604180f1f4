package handler

import (
	"net/http"

	"clubhub/internal/domain/design"
	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// DesignHandler handles design file HTTP endpoints.
type DesignHandler struct {
	service *services.DesignService
}

func NewDesignHandler(service *services.DesignService) *DesignHandler {
	return &DesignHandler{service: service}
}

// UploadUniform accepts uniform design files; category comes from the form.
func (h *DesignHandler) UploadUniform(c *gin.Context) {
	h.upload(c, services.DesignUploadInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Type:        design.TypeUniform,
	})
}

// UploadPost accepts post design files; type and category are fixed.
func (h *DesignHandler) UploadPost(c *gin.Context) {
	h.upload(c, services.DesignUploadInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    design.TypeDesign,
		Type:        design.TypeDesign,
	})
}

func (h *DesignHandler) upload(c *gin.Context, in services.DesignUploadInput) {
	p, ok := principal(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	headers := form.File["files"]

	uploads := make([]services.Upload, 0, len(headers))
	opened := make([]interface{ Close() error }, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
			return
		}
		opened = append(opened, f)
		uploads = append(uploads, services.Upload{
			OriginalName: fh.Filename,
			MimeType:     fh.Header.Get("Content-Type"),
			Content:      f,
		})
	}

	infos, err := h.service.Upload(c.Request.Context(), p, in, uploads, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"files": infos}))
}

// List returns design files, optionally filtered by type.
func (h *DesignHandler) List(c *gin.Context) {
	files, err := h.service.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"files": files}))
}

// Download streams a stored design file.
func (h *DesignHandler) Download(c *gin.Context) {
	res, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	defer res.Content.Close()

	streamDownload(c, res)
}

// Delete removes a design file.
func (h *DesignHandler) Delete(c *gin.Context) {
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
