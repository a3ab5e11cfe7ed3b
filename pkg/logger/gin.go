package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"StorefrontPayments/pkg/correlation"

	"github.com/gin-gonic/gin"
)

const maxBody = 8 * 1024 // 8KB

// Provider callbacks carry signatures and payer data; their bodies are never logged.
var skipBodyPrefixes = []string{"/callback/"}

func limit(b []byte) []byte {
	if len(b) > maxBody {
		return b[:maxBody]
	}
	return b
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// CorrelationMiddleware stores the request's correlation id in its context and echoes it back.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		corrID := correlation.Accept(c.GetHeader(correlation.HeaderName))

		ctx := correlation.WithID(c.Request.Context(), corrID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(correlation.HeaderName, corrID)

		c.Next()
	}
}

// GinBodyLogger logs every request with its status, and the bodies of API calls.
func GinBodyLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		logBodies := !hasAnyPrefix(c.Request.URL.Path, skipBodyPrefixes)

		var requestBody []byte
		if logBodies && c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		responseBuffer := &bytes.Buffer{}
		if logBodies {
			c.Writer = &responseBodyWriter{
				body:           responseBuffer,
				ResponseWriter: c.Writer,
			}
		}

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		}
		if logBodies {
			attrs = append(attrs,
				"query", c.Request.URL.RawQuery,
				maybeJSON("request_body", limit(requestBody)),
				maybeJSON("response_body", limit(responseBuffer.Bytes())),
			)
		}

		slog.InfoContext(c.Request.Context(), "HTTP Request", attrs...)
	}
}

func maybeJSON(key string, b []byte) slog.Attr {
	bb := bytes.TrimSpace(b)

	if len(bb) == 0 {
		return slog.Any(key, nil)
	}
	if json.Valid(bb) {
		return slog.Any(key, json.RawMessage(bb))
	}
	return slog.String(key, string(bb))
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
