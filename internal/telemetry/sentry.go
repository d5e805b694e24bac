package telemetry

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

const flushTimeout = 2 * time.Second

var enabled atomic.Bool

// Init turns on error reporting when dsn is set. An empty dsn leaves
// telemetry off and every capture helper becomes a no-op.
func Init(dsn, environment, service string) error {
	if dsn == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		ServerName:       service,
		AttachStacktrace: true,
	}); err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}

	enabled.Store(true)

	return nil
}

func Enabled() bool {
	return enabled.Load()
}

func Flush() {
	if !Enabled() {
		return
	}

	sentry.Flush(flushTimeout)
}

func CaptureError(err error, message string) {
	if !Enabled() || err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		if message != "" {
			scope.SetTag("log_message", message)
		}
		sentry.CaptureException(err)
	})
}

// Middleware reports panics to Sentry and re-panics so gin.Recovery still
// writes the 500. It must sit inside gin.Recovery in the chain.
func Middleware(requestIDKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Enabled() {
			c.Next()
			return
		}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetRequest(c.Request)
			hub.Scope().SetTag("request_id", c.GetString(requestIDKey))
			hub.Recover(rec)
			hub.Flush(flushTimeout)

			panic(rec)
		}()

		c.Next()
	}
}
