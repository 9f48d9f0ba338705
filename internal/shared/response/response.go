package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape every failed request carries.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, message string, details string) {
	c.JSON(status, ErrorBody{
		StatusCode: status,
		Message:    message,
		Details:    details,
	})
}
