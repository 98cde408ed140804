package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/somahsap/site-core/internal/pkg/response"
	"go.uber.org/zap"
)

// maxUploadBytes caps a single image at 5 MiB.
const maxUploadBytes = 5 << 20

var unsafeChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// Handler stores admin-uploaded images under <static>/uploads and produces a
// downscaled JPEG thumbnail alongside each one.
type Handler struct {
	staticDir string
	logger    *zap.Logger
}

func NewHandler(staticDir string, logger *zap.Logger) *Handler {
	return &Handler{staticDir: staticDir, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/admin/upload", authMW, h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Dosya bulunamadı.")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.BadRequest(c, "Sadece görsel yüklenebilir.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, "Dosya çok büyük (max 5MB).")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer src.Close()
	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if len(data) > maxUploadBytes {
		response.BadRequest(c, "Dosya çok büyük (max 5MB).")
		return
	}

	base, ext := splitSafeName(fileHeader.Filename)
	now := time.Now().UnixMilli()
	filename := fmt.Sprintf("%d-%s%s", now, base, ext)

	uploadDir := filepath.Join(h.staticDir, "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		response.InternalError(c, err)
		return
	}
	if err := os.WriteFile(filepath.Join(uploadDir, filename), data, 0o644); err != nil {
		response.InternalError(c, err)
		return
	}

	srcURL := "/uploads/" + filename
	thumbURL := srcURL
	if !strings.Contains(contentType, "svg") {
		thumbName := fmt.Sprintf("%s-%d-thumb.jpg", base, now)
		if err := writeThumbnail(data, filepath.Join(uploadDir, thumbName)); err != nil {
			// Undecodable formats keep the original as their own thumbnail.
			h.logger.Warn("thumbnail generation failed",
				zap.String("file", filename), zap.Error(err))
		} else {
			thumbURL = "/uploads/" + thumbName
		}
	}

	response.OK(c, gin.H{
		"src":   srcURL,
		"thumb": thumbURL,
	})
}

// splitSafeName lowercases the client filename, collapses anything outside
// [a-z0-9._-] into dashes, truncates, and splits off the extension.
func splitSafeName(name string) (base, ext string) {
	safe := strings.ToLower(strings.TrimSpace(name))
	if safe == "" {
		safe = "image"
	}
	safe = unsafeChars.ReplaceAllString(safe, "-")
	if len(safe) > 80 {
		safe = safe[:80]
	}
	ext = filepath.Ext(safe)
	if ext == "" {
		ext = ".png"
	}
	base = strings.TrimSuffix(safe, ext)
	if base == "" {
		base = "image"
	}
	return base, ext
}
