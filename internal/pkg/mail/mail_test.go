package mail

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	full := Config{Host: "smtp.test", Port: 587, User: "u", Pass: "p", From: "a@b.c", To: "d@e.f"}
	assert.NoError(t, full.Validate())

	missingHost := full
	missingHost.Host = ""
	assert.Error(t, missingHost.Validate())

	missingTo := full
	missingTo.To = ""
	assert.Error(t, missingTo.Validate())
}

func TestBuildMessage(t *testing.T) {
	cfg := Config{From: "noreply@site.test", To: "owner@site.test"}
	raw := string(buildMessage(cfg, Message{
		Subject: "Teklif Talebi — Merdiven",
		Text:    "line one\nline two",
		HTML:    "<b>hi</b>",
		ReplyTo: "customer@example.com",
	}))

	assert.Contains(t, raw, "From: noreply@site.test\r\n")
	assert.Contains(t, raw, "To: owner@site.test\r\n")
	assert.Contains(t, raw, "Reply-To: customer@example.com\r\n")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "line one\r\nline two")
	assert.Contains(t, raw, "<b>hi</b>")
	// Non-ASCII subject must be encoded for the wire.
	assert.False(t, strings.Contains(raw, "Subject: Teklif Talebi — Merdiven"))
}

type slowSender struct {
	delay time.Duration
	err   error
	sent  []Message
}

func (s *slowSender) Send(msg Message) error {
	time.Sleep(s.delay)
	s.sent = append(s.sent, msg)
	return s.err
}

func TestSendWithTimeoutCompletes(t *testing.T) {
	s := &slowSender{}
	err := SendWithTimeout(s, Message{Subject: "x"}, time.Second)
	require.NoError(t, err)
	assert.Len(t, s.sent, 1)
}

func TestSendWithTimeoutExpires(t *testing.T) {
	s := &slowSender{delay: 200 * time.Millisecond}
	err := SendWithTimeout(s, Message{}, 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestSendWithTimeoutPropagatesError(t *testing.T) {
	s := &slowSender{err: errors.New("relay refused")}
	err := SendWithTimeout(s, Message{}, time.Second)
	assert.EqualError(t, err, "relay refused")
}
