package mailbox

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
	g := rg.Group("/admin/mailbox", authMW)
	g.GET("", h.get)
	g.PUT("", h.put)
}

func (h *Handler) get(c *gin.Context) {
	settings, err := h.svc.Read(c.Request.Context())
	if err != nil {
		h.logger.Error("read mail settings", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"settings": settings})
}

func (h *Handler) put(c *gin.Context) {
	var settings models.MailSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	if err := h.svc.Write(c.Request.Context(), settings); err != nil {
		if schemaErr, ok := validate.IsSchemaError(err); ok {
			response.BadRequestDetails(c, "mail settings failed validation", schemaErr.Fields)
			return
		}
		h.logger.Error("write mail settings", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.OK(c, nil)
}
