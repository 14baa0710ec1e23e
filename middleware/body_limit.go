package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxImageBodyBytes caps checkout request bodies; uploads are base64 image
// payloads and anything beyond this is not a printable image.
const MaxImageBodyBytes = 50 << 20 // 50mb

// BodyLimit caps the request body at max bytes. Reads past the limit fail,
// which surfaces as a bind error in the handler.
func BodyLimit(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		c.Next()
	}
}
