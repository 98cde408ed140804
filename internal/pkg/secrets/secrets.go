// Package secrets resolves the admin password and session signing secret.
// One Provider implementation is selected at startup per deployment target;
// nothing is resolved ad hoc per request.
package secrets

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Credentials is what every provider resolves.
type Credentials struct {
	AdminPassword string
	AdminSecret   string
}

// Provider yields the admin credentials. Implementations must be safe for
// concurrent use.
type Provider interface {
	Resolve(ctx context.Context) (Credentials, error)
}

// Static returns fixed credentials, typically lifted from configuration or
// environment at startup.
type Static struct {
	Password string
	Secret   string
}

func (s Static) Resolve(context.Context) (Credentials, error) {
	return Credentials{
		AdminPassword: strings.TrimSpace(s.Password),
		AdminSecret:   strings.TrimSpace(s.Secret),
	}, nil
}

// Cached memoizes an underlying provider for a fixed TTL, replacing the
// process-global memoization the original deployment relied on.
type Cached struct {
	Inner Provider
	TTL   time.Duration

	mu        sync.Mutex
	value     Credentials
	fetchedAt time.Time
}

func NewCached(inner Provider, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cached{Inner: inner, TTL: ttl}
}

func (c *Cached) Resolve(ctx context.Context) (Credentials, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.TTL {
		return c.value, nil
	}
	creds, err := c.Inner.Resolve(ctx)
	if err != nil {
		// Serve the stale value if we ever had one; a transient parameter
		// store outage should not lock the admin out.
		if !c.fetchedAt.IsZero() {
			return c.value, nil
		}
		return Credentials{}, err
	}
	c.value = creds
	c.fetchedAt = time.Now()
	return creds, nil
}
