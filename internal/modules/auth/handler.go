package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/somahsap/site-core/internal/pkg/secrets"
	"github.com/somahsap/site-core/internal/pkg/session"
	"go.uber.org/zap"
)

// CookieName is the admin session cookie, shared with the auth middleware.
const CookieName = "admin"

const (
	loginPath = "/admin/login"
	adminPath = "/admin"

	cookieMaxAge = 60 * 60 * 24 * 7
)

// Handler implements the form-post login flow. Outcomes are communicated by
// redirect so the plain HTML login page needs no client-side script.
type Handler struct {
	provider secrets.Provider
	secure   bool
	logger   *zap.Logger
}

func NewHandler(provider secrets.Provider, secureCookies bool, logger *zap.Logger) *Handler {
	return &Handler{provider: provider, secure: secureCookies, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/admin")
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
}

func (h *Handler) login(c *gin.Context) {
	creds, err := h.provider.Resolve(c.Request.Context())
	if err != nil {
		h.logger.Error("resolve admin credentials", zap.Error(err))
		redirect(c, loginPath+"?error=missing-env")
		return
	}
	if creds.AdminPassword == "" || creds.AdminSecret == "" {
		h.logger.Warn("admin credentials not configured")
		redirect(c, loginPath+"?error=missing-env")
		return
	}

	password := c.PostForm("password")
	if strings.TrimSpace(password) == "" {
		redirect(c, loginPath+"?error=required")
		return
	}
	if !session.VerifyPassword(password, creds.AdminPassword) {
		redirect(c, loginPath+"?error=invalid-password")
		return
	}

	token, err := session.Sign(creds.AdminSecret, session.DefaultTTL)
	if err != nil {
		h.logger.Error("sign session token", zap.Error(err))
		redirect(c, loginPath+"?error=missing-env")
		return
	}

	h.setCookie(c, token, cookieMaxAge)
	redirect(c, adminPath)
}

func (h *Handler) logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	redirect(c, loginPath)
}

func (h *Handler) setCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, maxAge, "/", "", h.secure, true)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusTemporaryRedirect, location)
}
