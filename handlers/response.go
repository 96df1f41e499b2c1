package handlers

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {success, data|error,
// message?} plus whatever extra fields the route carries (count, total,
// details...). These helpers cover the common shapes; handlers reach
// for gin.H directly when they need more.

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, code int, data any, message string) {
	c.JSON(code, gin.H{"success": true, "data": data, "message": message})
}

func respondError(c *gin.Context, code int, errMsg, message string) {
	body := gin.H{"success": false, "error": errMsg}
	if message != "" {
		body["message"] = message
	}
	c.JSON(code, body)
}
