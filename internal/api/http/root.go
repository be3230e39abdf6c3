package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiName = "Terminal Portfolio API"

// Root answers GET /api/ with the service name and version.
func Root(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": apiName, "version": version})
	}
}
