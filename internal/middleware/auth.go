package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/somahsap/site-core/internal/modules/auth"
	"github.com/somahsap/site-core/internal/pkg/response"
	"github.com/somahsap/site-core/internal/pkg/secrets"
	"github.com/somahsap/site-core/internal/pkg/session"
)

// AdminAuth returns a middleware that admits only requests carrying a valid
// admin session cookie. Any failure along the way reads as unauthorized; no
// detail about which check failed leaks to the client.
func AdminAuth(provider secrets.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			response.Unauthorized(c)
			return
		}

		creds, err := provider.Resolve(c.Request.Context())
		if err != nil || creds.AdminSecret == "" {
			response.Unauthorized(c)
			return
		}
		if !session.Verify(token, creds.AdminSecret) {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
