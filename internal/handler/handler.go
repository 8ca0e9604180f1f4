// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"clubhub/internal/domain/user"
	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"
	clubhub_errors "clubhub/pkg/errors"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, err error) {
	c.JSON(clubhub_errors.HTTPStatus(err), httpdto.NewErrorResponse(err.Error(), clubhub_errors.Code(err)))
}

func principal(c *gin.Context) (user.Principal, bool) {
	p, ok := services.PrincipalFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
	}
	return p, ok
}

func requestMeta(c *gin.Context) services.RequestMeta {
	return services.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
