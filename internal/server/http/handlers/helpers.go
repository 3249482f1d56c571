package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmoura/pastelaria/internal/server/http/dto"
)

// WelcomeMessage greets API clients on the root endpoint.
const WelcomeMessage = "Pastelaria API - Bem vindos!"

// Root handles GET /api/.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: WelcomeMessage})
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: detail})
}

func internalError(c *gin.Context) {
	abortWithDetail(c, http.StatusInternalServerError, "internal error")
}
