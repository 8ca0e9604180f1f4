package handler

import (
	"net/http"
	"strconv"

	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// UserHandler handles account management HTTP endpoints. Admin only.
type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	dtos := make([]httpdto.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, httpdto.UserDTO{
			ID:        u.ID,
			Name:      u.Name,
			StudentID: u.StudentID,
			Username:  u.Username,
			Role:      u.Role,
		})
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.UsersResponse{Users: dtos}))
}

func (h *UserHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req httpdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	u, err := h.service.Create(c.Request.Context(), p, services.CreateUserInput{
		Name:      req.Name,
		StudentID: req.StudentID,
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
	}, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		StudentID: u.StudentID,
		Username:  u.Username,
		Role:      u.Role,
	}))
}

func (h *UserHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), p, id, requestMeta(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}
