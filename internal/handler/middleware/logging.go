package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"spa-pos/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
)

// health and scrape endpoints are polled constantly; they log at debug.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, timezone: timezone}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware tags every request with an id and logs one line when it
// completes, carrying the operator and transaction once they are known.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = l.newRequestID(start)
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if terminalID := c.GetHeader("X-Terminal-ID"); terminalID != "" {
			attrs = append(attrs, slog.String("terminal_id", terminalID))
		}

		c.Next()

		status := c.Writer.Status()
		attrs = append(attrs, sessionAttrs(c)...)
		if txnID := c.Param("id"); txnID != "" {
			attrs = append(attrs, slog.String("transaction_id", txnID))
		}
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		l.logger.LogAttrs(context.Background(), levelFor(c.Request.URL.Path, status), "Request completed", attrs...)
	}
}

func levelFor(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}
	if _, ok := quietPaths[path]; ok {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// sessionAttrs is empty until the auth middleware has resolved a session.
func sessionAttrs(c *gin.Context) []slog.Attr {
	sess, ok := GetSession(c)
	if !ok || sess == nil {
		return nil
	}
	attrs := []slog.Attr{
		slog.String("session_id", sess.ID().String()),
		slog.String("user_id", sess.Profile().ID()),
	}
	if role, ok := GetUserRole(c); ok {
		attrs = append(attrs, slog.String("role", role.String()))
	}
	return attrs
}

func GetRequestID(c *gin.Context) string {
	if v, exists := c.Get(ctxRequestIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// newRequestID is a local timestamp followed by eight hex characters.
func (l *Logger) newRequestID(now time.Time) string {
	return fmt.Sprintf("%s-%s", now.In(l.timezone).Format("20060102150405"), uuid.NewString()[:8])
}
