package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"groq-scribe/internal/api/errors"
)

// BodyLimit caps the request body size. Requests whose declared
// Content-Length exceeds the cap are rejected before the handler runs;
// bodies without a declared length are wrapped in MaxBytesReader so an
// oversized chunked upload dies mid-read instead of reaching the
// transcription service.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			HandleError(c, errors.NewPayloadTooLargeError(
				fmt.Sprintf("File too large (limit is %d MB)", maxBytes/(1024*1024))))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
