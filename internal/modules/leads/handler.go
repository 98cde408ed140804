package leads

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/somahsap/site-core/internal/pkg/response"
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
	g := rg.Group("/admin/leads", authMW)
	g.GET("", h.list)
	g.DELETE("", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list leads", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"leads": list})
}

func (h *Handler) remove(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		response.BadRequest(c, "ID gerekli.")
		return
	}
	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		h.logger.Error("remove lead", zap.Error(err), zap.String("id", id))
		response.InternalError(c, err)
		return
	}
	response.OK(c, nil)
}
