package contact

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/somahsap/site-core/internal/models"
	"github.com/somahsap/site-core/internal/modules/leads"
	"github.com/somahsap/site-core/internal/pkg/mail"
	"github.com/somahsap/site-core/internal/pkg/response"
	"github.com/somahsap/site-core/internal/pkg/validate"
	"go.uber.org/zap"
)

// maxBodyBytes caps the contact payload; the largest legal message is a few
// kilobytes of text.
const maxBodyBytes = 64 << 10

// SourceNameFunc resolves the brand name stamped into notification mail.
type SourceNameFunc func(ctx context.Context) string

type Handler struct {
	leads      *leads.Service
	sender     mail.Sender
	sourceName SourceNameFunc
	logger     *zap.Logger
}

func NewHandler(leadSvc *leads.Service, sender mail.Sender, sourceName SourceNameFunc, logger *zap.Logger) *Handler {
	if sourceName == nil {
		sourceName = func(context.Context) string { return defaultSourceName }
	}
	return &Handler{leads: leadSvc, sender: sender, sourceName: sourceName, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		response.BadRequest(c, "Form doğrulama hatası.")
		return
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		response.BadRequest(c, "Form doğrulama hatası.")
		return
	}

	var (
		base baseRequest
		msg  mail.Message
		lead models.LeadEntry
	)
	source := h.sourceName(c.Request.Context())

	switch probe.Type {
	case "quote":
		var req quoteRequest
		if !h.decode(c, raw, &req) {
			return
		}
		base = req.baseRequest
		msg, lead = buildQuote(source, req)
	case "message":
		var req messageRequest
		if !h.decode(c, raw, &req) {
			return
		}
		base = req.baseRequest
		msg, lead = buildMessage(source, req)
	case "quick":
		var req quickRequest
		if !h.decode(c, raw, &req) {
			return
		}
		base = req.baseRequest
		msg, lead = buildQuick(source, req)
	default:
		response.BadRequest(c, "Form doğrulama hatası.")
		return
	}

	// Honeypot hit: pretend success and record nothing.
	if strings.TrimSpace(base.Company) != "" {
		response.OK(c, nil)
		return
	}

	// The lead is written first and stays recorded even when delivery below
	// fails, so no inquiry is ever lost to a flaky relay.
	if _, err := h.leads.Append(c.Request.Context(), lead); err != nil {
		h.logger.Error("append lead", zap.Error(err))
		response.InternalError(c, err)
		return
	}

	if err := mail.SendWithTimeout(h.sender, msg, mail.SendTimeout); err != nil {
		h.logger.Warn("contact mail delivery failed",
			zap.String("type", probe.Type), zap.Error(err))
		response.BadGateway(c, "Mail gönderilemedi.", err.Error())
		return
	}

	response.OK(c, nil)
}

func (h *Handler) decode(c *gin.Context, raw []byte, dst interface{}) bool {
	if err := json.Unmarshal(raw, dst); err != nil {
		response.BadRequest(c, "Form doğrulama hatası.")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		if schemaErr, ok := validate.IsSchemaError(err); ok {
			response.BadRequestDetails(c, "Form doğrulama hatası.", schemaErr.Fields)
			return false
		}
		response.BadRequest(c, "Form doğrulama hatası.")
		return false
	}
	return true
}
