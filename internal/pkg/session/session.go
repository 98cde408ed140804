// Package session implements the self-contained admin session token: a
// base64url JSON payload joined to an HMAC-SHA256 signature over the encoded
// payload. There is no server-side session table; invalidation is expiry or
// rotating the signing secret.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// DefaultTTL is the cookie and token lifetime.
const DefaultTTL = 7 * 24 * time.Hour

const payloadVersion = 1

// payload is the signed token body. Timestamps are unix milliseconds.
type payload struct {
	V   int   `json:"v"`
	Iat int64 `json:"iat"`
	Exp int64 `json:"exp"`
}

var errNoSecret = errors.New("session: signing secret is empty")

// Sign mints a token valid for ttl from now.
func Sign(secret string, ttl time.Duration) (string, error) {
	return signAt(secret, ttl, time.Now())
}

func signAt(secret string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errNoSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	body, err := json.Marshal(payload{
		V:   payloadVersion,
		Iat: now.UnixMilli(),
		Exp: now.Add(ttl).UnixMilli(),
	})
	if err != nil {
		return "", err
	}
	data := base64.RawURLEncoding.EncodeToString(body)
	return data + "." + sign(data, secret), nil
}

// Verify reports whether token carries a valid signature under secret and has
// not expired. Any malformation fails closed.
func Verify(token, secret string) bool {
	return verifyAt(token, secret, time.Now())
}

func verifyAt(token, secret string, now time.Time) bool {
	if token == "" || secret == "" {
		return false
	}
	data, sig, ok := strings.Cut(token, ".")
	if !ok || data == "" || sig == "" {
		return false
	}
	expected := sign(data, secret)
	if len(sig) != len(expected) {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) != 1 {
		return false
	}
	raw, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		return false
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return false
	}
	if p.V != payloadVersion || p.Exp == 0 {
		return false
	}
	return now.UnixMilli() < p.Exp
}

func sign(data, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyPassword compares a submitted password against the configured one in
// constant time with respect to the position of the first differing byte.
func VerifyPassword(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
