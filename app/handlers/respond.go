// Package handlers exposes the app's screen flows over a local HTTP
// surface.
package handlers

import (
	"github.com/gin-gonic/gin"

	"adjaoko/app/dto"
)

// respondJSON sends a JSON response.
func respondJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// respondError sends an error response.
func respondError(c *gin.Context, status int, message string, details map[string]string) {
	c.JSON(status, dto.ErrorResponse{
		Error:   message,
		Details: details,
	})
}
