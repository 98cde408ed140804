// Package response centralizes the JSON envelope: every body carries an "ok"
// flag so browser code can branch without inspecting status codes.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 {ok:true} merged with the given extra fields.
func OK(c *gin.Context, extra gin.H) {
	body := gin.H{"ok": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// BadRequest sends a 400 validation-class error.
func BadRequest(c *gin.Context, errMsg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": errMsg})
}

// BadRequestDetails sends a 400 with structured field-level details.
func BadRequestDetails(c *gin.Context, errMsg string, details interface{}) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": errMsg, "details": details})
}

// Unauthorized sends a 401. Absence of proof of identity always lands here.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
}

// BadGateway sends a 502 for delivery failures, distinct from validation so
// callers can tell "your input was bad" from "we could not notify staff".
func BadGateway(c *gin.Context, errMsg, message string) {
	c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"ok": false, "error": errMsg, "message": message})
}

// InternalError sends a 500 for backing-store and other fatal request errors.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// NotFound sends a 404.
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
}
