package handlers

import "github.com/gin-gonic/gin"

// Responses use a uniform envelope: successes wrap their payload under "data",
// errors carry a human-readable message plus the underlying detail.

func successResponse(data gin.H) gin.H {
	return gin.H{"status": "success", "data": data}
}

func errorResponse(message string, err error) gin.H {
	body := gin.H{"status": "error", "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return body
}
