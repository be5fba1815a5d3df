package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/falconboard/boardflow/internal/pkg/signature"
)

// SignatureHeader carries the webhook HMAC sent by the commerce platform.
const SignatureHeader = "X-Shopify-Hmac-Sha256"

// VerifySignature validates the webhook HMAC over the raw request body and
// restores the body for downstream handlers. An empty secret disables
// verification; that is meant for local development only.
func VerifySignature(secret string, logger *slog.Logger) gin.HandlerFunc {
	verifier := signature.New(secret)
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if !verifier.Verify(body, c.GetHeader(SignatureHeader)) {
			logger.Warn("webhook signature rejected",
				slog.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Next()
	}
}
