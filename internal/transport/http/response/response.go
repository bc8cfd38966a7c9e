package response

import "github.com/gin-gonic/gin"

// Error writes the chat API's error shape.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}

// Message writes a plain confirmation for JSON endpoints.
func Message(c *gin.Context, message string) {
	c.JSON(200, gin.H{"message": message})
}
