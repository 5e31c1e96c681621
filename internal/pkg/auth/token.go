// Package auth issues and verifies the bearer tokens handed out at login.
//
// A token has the form "<userID>.<expiryUnix>.<signature>" where signature is
// the hex encoded HMAC-SHA256 of "<userID>.<expiryUnix>" under the configured secret.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidToken is returned for malformed or forged tokens
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for well-formed tokens past their expiry
	ErrExpiredToken = errors.New("token expired")
)

// TokenSigner signs and verifies user tokens
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenSigner creates a signer with the given secret and token lifetime
func NewTokenSigner(secret string, ttl time.Duration) (*TokenSigner, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &TokenSigner{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue returns a token for userID and its expiry time
func (s *TokenSigner) Issue(userID uint) (string, time.Time, error) {
	if userID == 0 {
		return "", time.Time{}, errors.New("cannot issue token for user id 0")
	}
	expiresAt := s.now().Add(s.ttl).UTC().Truncate(time.Second)
	payload := fmt.Sprintf("%d.%d", userID, expiresAt.Unix())
	return payload + "." + s.sign(payload), expiresAt, nil
}

// Parse verifies token and returns the user id it was issued for
func (s *TokenSigner) Parse(token string) (uint, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return 0, ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	expected := s.sign(payload)
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}
	expiry, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if !s.now().Before(time.Unix(expiry, 0)) {
		return 0, ErrExpiredToken
	}

	return uint(userID), nil
}

func (s *TokenSigner) sign(payload string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}
