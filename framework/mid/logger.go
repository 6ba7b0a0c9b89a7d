package mid

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/covidboard/api/framework/web"
	"github.com/covidboard/api/internal"
	"github.com/covidboard/api/logger"
)

const (
	healthCheckExcludePath = "/health"
)

// Logger writes some information about the request to the logs in the
// format: TraceID : (200) GET /foo -> IP ADDR (latency)
func Logger() web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if ctx.Request.URL.String() == healthCheckExcludePath {
				return before(ctx)
			}

			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			log := logger.FromContext(ctx)

			log.Printf("%s: started : %s %s -> %s",
				v.TraceID,
				ctx.Request.Method, ctx.Request.URL.Path, ctx.Request.RemoteAddr,
			)

			err := before(ctx)

			statusCode := v.StatusCode
			if statusCode == 0 {
				statusCode = http.StatusOK
			}

			log.Printf("%s: completed : (%d) %s %s -> %s (%s)",
				v.TraceID,
				statusCode,
				ctx.Request.Method, ctx.Request.URL.Path, ctx.Request.RemoteAddr,
				time.Since(v.Now),
			)

			return err
		}

		return h
	}

	return f
}
