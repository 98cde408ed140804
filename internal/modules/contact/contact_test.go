package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/somahsap/site-core/internal/models"
	"github.com/somahsap/site-core/internal/modules/leads"
	"github.com/somahsap/site-core/internal/pkg/blob"
	"github.com/somahsap/site-core/internal/pkg/mail"
)

type fakeSender struct {
	sent  []mail.Message
	err   error
	delay time.Duration
}

func (f *fakeSender) Send(msg mail.Message) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type testRig struct {
	router *gin.Engine
	leads  *leads.Service
	sender *fakeSender
}

func newRig(t *testing.T) *testRig {
	t.Helper()
	gin.SetMode(gin.TestMode)

	leadSvc := leads.NewService(blob.NewFile(filepath.Join(t.TempDir(), "leads.json")))
	sender := &fakeSender{}
	h := NewHandler(leadSvc, sender, func(context.Context) string { return "Soma Ahşap" }, zap.NewNop())

	router := gin.New()
	h.RegisterRoutes(router.Group("/api"))
	return &testRig{router: router, leads: leadSvc, sender: sender}
}

func (r *testRig) post(t *testing.T, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)
	return w
}

func validQuote() map[string]interface{} {
	return map[string]interface{}{
		"type":        "quote",
		"email":       "musteri@example.com",
		"consent":     true,
		"phone":       "05551112233",
		"usageArea":   "Merdiven",
		"woodType":    "Meşe",
		"thicknessMm": 28,
		"quality":     "AB",
		"lengthMm":    2000,
		"widthMm":     600,
		"quantity":    4,
	}
}

func TestQuoteSubmission(t *testing.T) {
	rig := newRig(t)
	w := rig.post(t, validQuote())
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, rig.sender.sent, 1)
	msg := rig.sender.sent[0]
	assert.Equal(t, "Teklif Talebi — Merdiven / Meşe / AB", msg.Subject)
	assert.Equal(t, "musteri@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Text, "Kalınlık: 28 mm")
	// 2000mm x 600mm x 4 pieces.
	assert.Contains(t, msg.Text, "Tahmini Alan: 4.80 m²")
	assert.Contains(t, msg.Text, "Kaynak: Soma Ahşap web formu")
	assert.Contains(t, msg.HTML, "<table")

	list, err := rig.leads.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.LeadQuote, list[0].Type)
	assert.Equal(t, "Merdiven", list[0].Payload["usageArea"])
}

func TestMessageSubmission(t *testing.T) {
	rig := newRig(t)
	w := rig.post(t, map[string]interface{}{
		"type":    "message",
		"email":   "musteri@example.com",
		"consent": true,
		"phone":   "05551112233",
		"name":    "Ayşe Yılmaz",
		"subject": "Teslimat süresi",
		"message": "Siparişim ne zaman hazır olur acaba?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, rig.sender.sent, 1)
	assert.Equal(t, "Yeni Mesaj — Teslimat süresi", rig.sender.sent[0].Subject)
	assert.Contains(t, rig.sender.sent[0].Text, "Ad Soyad: Ayşe Yılmaz")
}

func TestQuickSubmission(t *testing.T) {
	rig := newRig(t)
	w := rig.post(t, map[string]interface{}{
		"type":    "quick",
		"email":   "musteri@example.com",
		"consent": true,
		"notes":   "Beni arayın lütfen",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, rig.sender.sent, 1)
	assert.Equal(t, "Hızlı İletişim Talebi", rig.sender.sent[0].Subject)
	assert.Contains(t, rig.sender.sent[0].Text, "Açıklama: Beni arayın lütfen")

	list, err := rig.leads.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.LeadQuick, list[0].Type)
}

func TestHoneypotSilentlyAccepted(t *testing.T) {
	rig := newRig(t)
	body := validQuote()
	body["company"] = "Acme Bot Ltd"

	w := rig.post(t, body)
	require.Equal(t, http.StatusOK, w.Code)

	// Nothing recorded, nothing sent.
	assert.Empty(t, rig.sender.sent)
	list, err := rig.leads.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestValidationFailures(t *testing.T) {
	rig := newRig(t)

	cases := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"missing consent", func(m map[string]interface{}) { m["consent"] = false }},
		{"bad email", func(m map[string]interface{}) { m["email"] = "not-an-email" }},
		{"thickness too small", func(m map[string]interface{}) { m["thicknessMm"] = 5 }},
		{"unknown quality", func(m map[string]interface{}) { m["quality"] = "ZZ" }},
		{"short phone", func(m map[string]interface{}) { m["phone"] = "123" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validQuote()
			tc.mutate(body)
			w := rig.post(t, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, false, resp["ok"])
		})
	}

	// No side effects from rejected submissions.
	assert.Empty(t, rig.sender.sent)
	list, err := rig.leads.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUnknownTypeRejected(t *testing.T) {
	rig := newRig(t)
	w := rig.post(t, map[string]interface{}{"type": "spam", "email": "a@b.c", "consent": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeliveryFailureKeepsLead(t *testing.T) {
	rig := newRig(t)
	rig.sender.err = assert.AnError

	w := rig.post(t, validQuote())
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Mail gönderilemedi.", resp["error"])

	// The inquiry survives the failed notification.
	list, err := rig.leads.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.LeadQuote, list[0].Type)
}
