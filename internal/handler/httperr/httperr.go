package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope for unexpected server failures. Request-level
// problems (bad input, wrong wizard state) use plain status bodies instead.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// AbortWithError writes the envelope and records the underlying error on
// the context so the logging middleware can pick it up.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
