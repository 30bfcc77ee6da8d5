package response

import "github.com/gin-gonic/gin"

// OK writes the payload as-is. Handlers shape their own top-level objects;
// there is no envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

// Error writes the flat error object every endpoint shares.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}
