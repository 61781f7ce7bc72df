package handler

import "github.com/gin-gonic/gin"

// All responses share one envelope: successes carry {success:true, data|message},
// failures carry {success:false, message, errors?}.

// OK writes a success envelope with a data payload
func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// OKMessage writes a success envelope carrying both a message and data
func OKMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

// Error writes a failure envelope
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// ValidationError writes a failure envelope with per-field details
func ValidationError(c *gin.Context, message string, details interface{}) {
	c.JSON(400, gin.H{"success": false, "message": message, "errors": details})
}
