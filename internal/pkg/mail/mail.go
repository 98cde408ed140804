// Package mail relays notification email over SMTP. Connection parameters
// come from the admin-edited MailSettings first, then environment fallbacks.
package mail

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// SendTimeout bounds how long a contact request waits on the relay.
const SendTimeout = 8 * time.Second

// ErrTimeout marks a send that exceeded SendTimeout. The lead record written
// before the send is not rolled back.
var ErrTimeout = errors.New("mail: send timed out")

// Config is the resolved SMTP relay configuration.
type Config struct {
	Host   string
	Port   int
	Secure bool // implicit TLS (465-style); otherwise STARTTLS is attempted
	User   string
	Pass   string
	From   string
	To     string
}

// Validate reports the first missing required parameter.
func (c Config) Validate() error {
	switch {
	case c.Host == "":
		return errors.New("mail: missing SMTP host")
	case c.Port == 0:
		return errors.New("mail: missing SMTP port")
	case c.User == "":
		return errors.New("mail: missing SMTP user")
	case c.Pass == "":
		return errors.New("mail: missing SMTP password")
	case c.From == "":
		return errors.New("mail: missing from address")
	case c.To == "":
		return errors.New("mail: missing to address")
	}
	return nil
}

// Message is one notification to relay, with both plaintext and HTML bodies.
type Message struct {
	Subject string
	Text    string
	HTML    string
	ReplyTo string
}

// Sender is the relay seam; handlers depend on this so tests can substitute
// a recording fake.
type Sender interface {
	Send(msg Message) error
}

// SMTPSender sends via net/smtp using a Config resolved per call.
type SMTPSender struct {
	// Resolve returns the current relay configuration; it re-reads the
	// mailbox settings so admin edits apply without a restart.
	Resolve func() (Config, error)
}

func NewSMTPSender(resolve func() (Config, error)) *SMTPSender {
	return &SMTPSender{Resolve: resolve}
}

func (s *SMTPSender) Send(msg Message) error {
	cfg, err := s.Resolve()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	body := buildMessage(cfg, msg)
	addr := cfg.Host + ":" + strconv.Itoa(cfg.Port)
	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)

	if cfg.Secure {
		return sendImplicitTLS(addr, cfg, auth, body)
	}
	return smtp.SendMail(addr, auth, cfg.From, []string{cfg.To}, body)
}

// sendImplicitTLS dials a TLS socket first (port-465 style servers never
// offer STARTTLS).
func sendImplicitTLS(addr string, cfg Config, auth smtp.Auth, body []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: cfg.Host})
	if err != nil {
		return fmt.Errorf("mail: tls dial %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		return fmt.Errorf("mail: smtp handshake: %w", err)
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("mail: auth: %w", err)
	}
	if err := client.Mail(cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(cfg.To); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

const altBoundary = "site-core-alt"

func buildMessage(cfg Config, msg Message) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", cfg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", altBoundary)

	writePart(&b, "text/plain", msg.Text)
	writePart(&b, "text/html", msg.HTML)
	fmt.Fprintf(&b, "--%s--\r\n", altBoundary)
	return b.Bytes()
}

func writePart(b *bytes.Buffer, contentType, body string) {
	fmt.Fprintf(b, "--%s\r\n", altBoundary)
	fmt.Fprintf(b, "Content-Type: %s; charset=UTF-8\r\n\r\n", contentType)
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
}

// SendWithTimeout races the relay against a timer. On timeout the send
// goroutine is abandoned; net/smtp offers no cancellation once dialing.
func SendWithTimeout(sender Sender, msg Message, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = SendTimeout
	}
	done := make(chan error, 1)
	go func() { done <- sender.Send(msg) }()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return ErrTimeout
	}
}
