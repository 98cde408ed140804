package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/somahsap/site-core/internal/middleware"
	"github.com/somahsap/site-core/internal/modules/auth"
	"github.com/somahsap/site-core/internal/modules/contact"
	"github.com/somahsap/site-core/internal/modules/content"
	"github.com/somahsap/site-core/internal/modules/leads"
	"github.com/somahsap/site-core/internal/modules/mailbox"
	"github.com/somahsap/site-core/internal/modules/upload"
	"github.com/somahsap/site-core/internal/pkg/blob"
	"github.com/somahsap/site-core/internal/pkg/mail"
	"github.com/somahsap/site-core/internal/pkg/response"
	"github.com/somahsap/site-core/internal/pkg/secrets"
)

func (a *App) registerRoutes(provider secrets.Provider, contentStore blob.Store, rdb *redis.Client) {
	r := a.router
	cfg := a.cfg
	authMW := middleware.AdminAuth(provider)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})

	contentSvc := content.NewService(contentStore)
	leadSvc := leads.NewService(blob.NewFile(filepath.Join(cfg.Paths.Data, "leads.json")))
	mailboxSvc := mailbox.NewService(blob.NewFile(filepath.Join(cfg.Paths.Data, "mailbox.json")), cfg.SMTP)

	sender := mail.NewSMTPSender(func() (mail.Config, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		mc, err := mailboxSvc.ResolveConfig(ctx)
		if err != nil {
			return mail.Config{}, err
		}
		return mc, mc.Validate()
	})

	sourceName := func(ctx context.Context) string {
		doc, err := contentSvc.Read(ctx)
		if err != nil || doc == nil || doc.Brand.Name == "" {
			return "Web Sitesi"
		}
		return doc.Brand.Name
	}

	api := r.Group("/api")
	api.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"pong": true})
	})
	api.GET("/uptime", func(c *gin.Context) {
		response.OK(c, gin.H{"uptime": time.Since(processStart).Truncate(time.Second).String()})
	})

	auth.NewHandler(provider, !cfg.IsDev(), a.logger).RegisterRoutes(api)
	content.NewHandler(contentSvc, a.logger).RegisterRoutes(api, authMW)
	leads.NewHandler(leadSvc, a.logger).RegisterRoutes(api, authMW)
	mailbox.NewHandler(mailboxSvc, a.logger).RegisterRoutes(api, authMW)
	upload.NewHandler(cfg.Paths.Static, a.logger).RegisterRoutes(api, authMW)

	contactHandler := contact.NewHandler(leadSvc, sender, sourceName, a.logger)
	contactGroup := api.Group("")
	contactGroup.Use(middleware.ContactRateLimit(rdb))
	contactHandler.RegisterRoutes(contactGroup)

	// Public read of the site content for the rendered pages.
	api.GET("/content", func(c *gin.Context) {
		doc, err := contentSvc.Read(c.Request.Context())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		if doc == nil {
			response.OK(c, gin.H{"content": gin.H{}})
			return
		}
		response.OK(c, gin.H{"content": doc})
	})

	// Uploaded assets are served straight from disk.
	r.Static("/uploads", filepath.Join(cfg.Paths.Static, "uploads"))
}
