package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// authMiddleware validates the Bearer access key against the configured
// bcrypt hash. With no hash configured every request passes.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.accessKeyHash == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		key := strings.TrimPrefix(header, "Bearer ")

		if err := bcrypt.CompareHashAndPassword(h.accessKeyHash, []byte(key)); err != nil {
			apiError(c, http.StatusUnauthorized, "invalid access key")
			c.Abort()
			return
		}

		c.Next()
	}
}
