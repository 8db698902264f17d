package httperr

import (
	"github.com/gin-gonic/gin"

	"coupon-api/internal/handler/dto/response"
)

// AbortWithEnvelope writes a failure envelope and preserves the original
// error on the gin context for the error middleware and future monitoring.
func AbortWithEnvelope(c *gin.Context, statusCode int, err error, messages ...string) {
	if err == nil {
		panic("AbortWithEnvelope: err cannot be nil")
	}

	env := response.Failure(statusCode, messages...)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: env,
	})
	c.Abort()
	c.JSON(statusCode, env)
}
