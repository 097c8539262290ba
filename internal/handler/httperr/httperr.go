// Package httperr carries an error response through gin's error stack so the
// error middleware can render it. The wire shape is the module's flat
// envelope: {"error": "..."} plus an optional detail.
package httperr

import (
	"github.com/gin-gonic/gin"

	"bakehouse/internal/pkg/errs"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

func NewResponse(status int, msg string) Response {
	return Response{Status: status, Error: msg}
}

// AbortWithError records the cause on the context for logging and aborts with
// the public envelope. A nil cause is substituted so the middleware always
// has something to log.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := NewResponse(status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
