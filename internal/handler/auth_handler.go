package handler

import (
	"net/http"

	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates an account and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Username, req.Password, requestMeta(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(services.SessionCookie, res.Token, int(res.ExpiresIn), "/", "", false, true)

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.LoginResponse{
		ExpiresIn: res.ExpiresIn,
		User: httpdto.UserDTO{
			ID:       res.User.ID,
			Name:     res.User.Name,
			Username: res.User.Username,
			Role:     res.User.Role,
		},
	}))
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	sessionID, ok := services.SessionIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
		return
	}

	if err := h.service.Logout(c.Request.Context(), p, sessionID, requestMeta(c)); err != nil {
		writeError(c, err)
		return
	}

	c.SetCookie(services.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse[any](nil))
}

// Check returns the authenticated account, role freshly read.
func (h *AuthHandler) Check(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.UserDTO{
		ID:       p.ID,
		Name:     p.Name,
		Username: p.Username,
		Role:     p.Role,
	}))
}
