package contact

import (
	"fmt"
	"strings"

	"github.com/somahsap/site-core/internal/models"
	"github.com/somahsap/site-core/internal/pkg/mail"
)

// defaultSourceName labels notification mail when the site content has no
// brand name to report.
const defaultSourceName = "Web Sitesi"

func baseText(sourceName string, req baseRequest, phone string) string {
	lines := []string{
		fmt.Sprintf("Kaynak: %s web formu", sourceName),
		fmt.Sprintf("E-posta: %s", req.Email),
	}
	if phone != "" {
		lines = append(lines, fmt.Sprintf("Telefon: %s", phone))
	}
	if req.Notes != "" {
		lines = append(lines, fmt.Sprintf("Açıklama: %s", req.Notes))
	}
	return strings.Join(lines, "\n")
}

func escapeHTML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	return r.Replace(s)
}

func wrapHTML(subject, inner string) string {
	return fmt.Sprintf(
		`<div style="font-family:ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Arial,sans-serif;line-height:1.6"><h2 style="margin:0 0 12px">%s</h2>%s</div>`,
		escapeHTML(subject), inner,
	)
}

func htmlRow(label, value string) string {
	return fmt.Sprintf(
		`<tr><td style="padding:6px 10px;color:#666">%s</td><td style="padding:6px 10px"><b>%s</b></td></tr>`,
		label, value,
	)
}

func buildQuote(sourceName string, req quoteRequest) (mail.Message, models.LeadEntry) {
	var areaM2 float64
	if req.LengthMm > 0 && req.WidthMm > 0 {
		qty := req.Quantity
		if qty == 0 {
			qty = 1
		}
		areaM2 = float64(req.LengthMm) * float64(req.WidthMm) / 1e6 * float64(qty)
	}

	subject := fmt.Sprintf("Teklif Talebi — %s / %s / %s", req.UsageArea, req.WoodType, req.Quality)
	base := baseText(sourceName, req.baseRequest, req.Phone)

	textLines := []string{
		subject,
		"",
		fmt.Sprintf("Kullanım Alanı: %s", req.UsageArea),
		fmt.Sprintf("Ahşap Türü: %s", req.WoodType),
		fmt.Sprintf("Kalınlık: %d mm", req.ThicknessMm),
		fmt.Sprintf("Kalite: %s", req.Quality),
	}
	if req.LengthMm > 0 {
		textLines = append(textLines, fmt.Sprintf("Boy: %d mm", req.LengthMm))
	}
	if req.WidthMm > 0 {
		textLines = append(textLines, fmt.Sprintf("En: %d mm", req.WidthMm))
	}
	if req.Quantity > 0 {
		textLines = append(textLines, fmt.Sprintf("Adet: %d", req.Quantity))
	}
	if areaM2 > 0 {
		textLines = append(textLines, fmt.Sprintf("Tahmini Alan: %.2f m²", areaM2))
	}
	textLines = append(textLines, "", base)

	var rows strings.Builder
	rows.WriteString(`<table cellpadding="0" cellspacing="0" style="border-collapse:collapse">`)
	rows.WriteString(htmlRow("Kullanım", escapeHTML(req.UsageArea)))
	rows.WriteString(htmlRow("Ahşap", escapeHTML(req.WoodType)))
	rows.WriteString(htmlRow("Kalınlık", fmt.Sprintf("%d mm", req.ThicknessMm)))
	rows.WriteString(htmlRow("Kalite", escapeHTML(req.Quality)))
	if req.LengthMm > 0 {
		rows.WriteString(htmlRow("Boy", fmt.Sprintf("%d mm", req.LengthMm)))
	}
	if req.WidthMm > 0 {
		rows.WriteString(htmlRow("En", fmt.Sprintf("%d mm", req.WidthMm)))
	}
	if req.Quantity > 0 {
		rows.WriteString(htmlRow("Adet", fmt.Sprintf("%d", req.Quantity)))
	}
	if areaM2 > 0 {
		rows.WriteString(htmlRow("Tahmini Alan", fmt.Sprintf("%.2f m²", areaM2)))
	}
	rows.WriteString(`</table>`)
	rows.WriteString(`<hr style="border:none;border-top:1px solid #eee;margin:16px 0"/>`)
	rows.WriteString(fmt.Sprintf(`<pre style="white-space:pre-wrap;margin:0">%s</pre>`, escapeHTML(base)))

	msg := mail.Message{
		Subject: subject,
		Text:    strings.Join(textLines, "\n"),
		HTML:    wrapHTML(subject, rows.String()),
		ReplyTo: req.Email,
	}
	lead := models.LeadEntry{
		Type:  models.LeadQuote,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
		Payload: map[string]interface{}{
			"usageArea":   req.UsageArea,
			"woodType":    req.WoodType,
			"quality":     req.Quality,
			"thicknessMm": req.ThicknessMm,
			"lengthMm":    req.LengthMm,
			"widthMm":     req.WidthMm,
			"quantity":    req.Quantity,
		},
	}
	return msg, lead
}

func buildMessage(sourceName string, req messageRequest) (mail.Message, models.LeadEntry) {
	subject := fmt.Sprintf("Yeni Mesaj — %s", req.Subject)
	base := baseText(sourceName, req.baseRequest, req.Phone)

	text := strings.Join([]string{
		subject,
		"",
		fmt.Sprintf("Ad Soyad: %s", req.Name),
		fmt.Sprintf("Konu: %s", req.Subject),
		"",
		req.Message,
		"",
		base,
	}, "\n")

	var inner strings.Builder
	inner.WriteString(fmt.Sprintf(`<p style="margin:0 0 10px"><b>%s</b> size bir mesaj gönderdi.</p>`, escapeHTML(req.Name)))
	inner.WriteString(fmt.Sprintf(`<p style="margin:0 0 10px"><b>Konu:</b> %s</p>`, escapeHTML(req.Subject)))
	inner.WriteString(fmt.Sprintf(
		`<div style="border:1px solid #eee;border-radius:10px;padding:12px;background:#fafafa">%s</div>`,
		strings.ReplaceAll(escapeHTML(req.Message), "\n", "<br/>"),
	))
	inner.WriteString(`<hr style="border:none;border-top:1px solid #eee;margin:16px 0"/>`)
	inner.WriteString(fmt.Sprintf(`<pre style="white-space:pre-wrap;margin:0">%s</pre>`, escapeHTML(base)))

	msg := mail.Message{
		Subject: subject,
		Text:    text,
		HTML:    wrapHTML(subject, inner.String()),
		ReplyTo: req.Email,
	}
	lead := models.LeadEntry{
		Type:  models.LeadMessage,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
		Payload: map[string]interface{}{
			"name":    req.Name,
			"subject": req.Subject,
			"message": req.Message,
		},
	}
	return msg, lead
}

func buildQuick(sourceName string, req quickRequest) (mail.Message, models.LeadEntry) {
	subject := "Hızlı İletişim Talebi"
	base := baseText(sourceName, req.baseRequest, "")

	inner := fmt.Sprintf(`<pre style="white-space:pre-wrap;margin:0">%s</pre>`, escapeHTML(base))

	msg := mail.Message{
		Subject: subject,
		Text:    strings.Join([]string{subject, "", base}, "\n"),
		HTML:    wrapHTML(subject, inner),
		ReplyTo: req.Email,
	}
	lead := models.LeadEntry{
		Type:  models.LeadQuick,
		Email: req.Email,
		Notes: req.Notes,
		Payload: map[string]interface{}{
			"source": "quick",
		},
	}
	return msg, lead
}
