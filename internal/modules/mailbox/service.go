package mailbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/somahsap/site-core/internal/config"
	"github.com/somahsap/site-core/internal/models"
	"github.com/somahsap/site-core/internal/pkg/blob"
	"github.com/somahsap/site-core/internal/pkg/mail"
	"github.com/somahsap/site-core/internal/pkg/validate"
)

// Service persists the admin-edited SMTP settings and resolves the effective
// relay configuration, falling back to the environment for any blank field.
type Service struct {
	mu       sync.Mutex
	store    blob.Store
	fallback config.SMTPConfig
}

func NewService(store blob.Store, fallback config.SMTPConfig) *Service {
	return &Service{store: store, fallback: fallback}
}

// Read returns the stored settings. A store that was never written yields
// zero-value settings rather than an error.
func (s *Service) Read(ctx context.Context) (models.MailSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings, _, err := s.load(ctx)
	return settings, err
}

// Write validates and persists the settings.
func (s *Service) Write(ctx context.Context, settings models.MailSettings) error {
	if err := validate.Struct(&settings); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mail settings: %w", err)
	}
	if err := s.store.Save(ctx, raw); err != nil {
		return fmt.Errorf("save mail settings: %w", err)
	}
	return nil
}

// ResolveConfig merges the stored settings over the environment fallback,
// field by field, and parses the port. Missing parameters only surface when a
// send is attempted.
func (s *Service) ResolveConfig(ctx context.Context) (mail.Config, error) {
	s.mu.Lock()
	settings, stored, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return mail.Config{}, err
	}

	host := pick(settings.SMTPHost, s.fallback.Host)
	portRaw := pick(settings.SMTPPort, s.fallback.Port)
	port := 0
	if portRaw != "" {
		port, err = strconv.Atoi(portRaw)
		if err != nil {
			return mail.Config{}, fmt.Errorf("mail settings: invalid SMTP port %q", portRaw)
		}
	}

	// The saved flag is authoritative once a settings document exists; until
	// then the environment decides, with port 465 implying implicit TLS.
	secure := settings.SMTPSecure
	if !stored {
		if s.fallback.Secure != nil {
			secure = *s.fallback.Secure
		} else {
			secure = port == 465
		}
	}

	return mail.Config{
		Host:   host,
		Port:   port,
		Secure: secure,
		User:   pick(settings.SMTPUser, s.fallback.User),
		Pass:   pick(settings.SMTPPass, s.fallback.Pass),
		From:   pick(settings.MailFrom, s.fallback.MailFrom),
		To:     pick(settings.MailTo, s.fallback.MailTo),
	}, nil
}

func (s *Service) load(ctx context.Context) (settings models.MailSettings, stored bool, err error) {
	raw, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, blob.ErrNotExist) {
			return models.MailSettings{}, false, nil
		}
		return models.MailSettings{}, false, fmt.Errorf("load mail settings: %w", err)
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.MailSettings{}, false, fmt.Errorf("decode mail settings: %w", err)
	}
	return settings, true, nil
}

func pick(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}
