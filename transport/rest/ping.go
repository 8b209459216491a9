package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ping - liveness check.
func (that *handlers) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
