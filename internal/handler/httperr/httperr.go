package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response mirrors the frontend's expected error envelope.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Success: false, Code: code, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
