package content

import (
	"github.com/gin-gonic/gin"
	"github.com/somahsap/site-core/internal/models"
	"github.com/somahsap/site-core/internal/pkg/response"
	"github.com/somahsap/site-core/internal/pkg/validate"
	"go.uber.org/zap"
)

type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/admin/content", authMW)
	g.GET("", h.get)
	g.PUT("", h.put)
}

func (h *Handler) get(c *gin.Context) {
	doc, err := h.svc.Read(c.Request.Context())
	if err != nil {
		h.logger.Error("read content", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	if doc == nil {
		// No document saved yet. The admin UI treats an empty object as a
		// blank slate.
		response.OK(c, gin.H{"content": gin.H{}})
		return
	}
	response.OK(c, gin.H{"content": doc})
}

func (h *Handler) put(c *gin.Context) {
	var doc models.SiteContent
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	if err := h.svc.Write(c.Request.Context(), &doc); err != nil {
		if schemaErr, ok := validate.IsSchemaError(err); ok {
			response.BadRequestDetails(c, "content failed validation", schemaErr.Fields)
			return
		}
		h.logger.Error("write content", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"content": doc})
}
