package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery превращает панику обработчика в 500 вместо падения процесса.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "handler panic",
				logger.Any("panic", r),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				ginext.H{"error": "internal server error"},
			)
		}()

		c.Next()
	}
}
