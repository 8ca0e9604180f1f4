package handler

import (
	"net/http"
	"strconv"

	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// FinanceHandler handles finance record HTTP endpoints. Create and
// Update take multipart forms because the receipt travels with them.
type FinanceHandler struct {
	service *services.FinanceService
}

func NewFinanceHandler(service *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

func (h *FinanceHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	in, receipt, closeFn, ok := h.bindForm(c)
	if !ok {
		return
	}
	defer closeFn()

	info, err := h.service.Create(c.Request.Context(), p, in, receipt, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(info))
}

func (h *FinanceHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"records": records}))
}

func (h *FinanceHandler) Get(c *gin.Context) {
	info, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(info))
}

func (h *FinanceHandler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(stats))
}

func (h *FinanceHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	in, receipt, closeFn, ok := h.bindForm(c)
	if !ok {
		return
	}
	defer closeFn()

	info, err := h.service.Update(c.Request.Context(), p, c.Param("id"), in, receipt, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(info))
}

func (h *FinanceHandler) Delete(c *gin.Context) {
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

// DownloadReceipt streams the stored receipt image.
func (h *FinanceHandler) DownloadReceipt(c *gin.Context) {
	res, err := h.service.DownloadReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	defer res.Content.Close()

	streamDownload(c, res)
}

// bindForm parses the multipart fields and the optional receipt file.
// The returned close function must run after the service call.
func (h *FinanceHandler) bindForm(c *gin.Context) (services.FinanceInput, *services.Upload, func(), bool) {
	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return services.FinanceInput{}, nil, nil, false
	}

	in := services.FinanceInput{
		Kind:        c.PostForm("type"),
		Amount:      amount,
		Date:        c.PostForm("date"),
		Description: c.PostForm("description"),
	}

	fh, err := c.FormFile("receipt")
	if err != nil {
		// No receipt attached.
		return in, nil, func() {}, true
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return services.FinanceInput{}, nil, nil, false
	}

	receipt := &services.Upload{
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get("Content-Type"),
		Content:      f,
	}
	return in, receipt, func() { f.Close() }, true
}
