package util

import "github.com/gin-gonic/gin"

func SuccessResponse(data interface{}) gin.H {
	return gin.H{"status": "success", "data": data}
}

func FailedResponse(err error) gin.H {
	return gin.H{"status": "failed", "error": err.Error()}
}
