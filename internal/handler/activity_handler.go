package handler

import (
	"fmt"
	"net/http"

	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles activity file HTTP endpoints.
type ActivityHandler struct {
	service *services.ActivityService
}

func NewActivityHandler(service *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Upload accepts one or more files in a multipart form.
func (h *ActivityHandler) Upload(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	category := c.PostForm("category")
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

	files, err := h.service.Upload(c.Request.Context(), p, category, uploads, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"files": files}))
}

// List returns all activity files grouped by category.
func (h *ActivityHandler) List(c *gin.Context) {
	listing, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(listing))
}

// Download streams a stored activity file.
func (h *ActivityHandler) Download(c *gin.Context) {
	res, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	defer res.Content.Close()

	streamDownload(c, res)
}

// Delete removes an activity file.
func (h *ActivityHandler) Delete(c *gin.Context) {
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

func streamDownload(c *gin.Context, res services.DownloadResult) {
	mimeType := res.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.OriginalName))
	c.DataFromReader(http.StatusOK, res.SizeBytes, mimeType, res.Content, nil)
}
