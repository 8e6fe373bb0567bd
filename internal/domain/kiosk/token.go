package kiosk

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTokenExpired     = errors.New("kiosk token expired")
	ErrTokenAlreadyUsed = errors.New("kiosk token already used")
)

const tokenBytes = 20

// Token is a short-lived, single-use check-in code shown as a QR on an
// unattended kiosk screen. A fresh token replaces the previous one on
// every refresh, so at most one token per club is redeemable.
type Token struct {
	value     string
	clubID    uuid.UUID
	issuedAt  time.Time
	expiresAt time.Time
	consumed  bool
}

func NewToken(clubID uuid.UUID, now time.Time, ttl time.Duration) (*Token, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	return &Token{
		value:     base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf),
		clubID:    clubID,
		issuedAt:  now,
		expiresAt: now.Add(ttl),
	}, nil
}

func ReconstructToken(value string, clubID uuid.UUID, issuedAt, expiresAt time.Time, consumed bool) *Token {
	return &Token{
		value:     value,
		clubID:    clubID,
		issuedAt:  issuedAt,
		expiresAt: expiresAt,
		consumed:  consumed,
	}
}

// Redeem consumes the token. Expiry is checked before the consumed flag
// so a stale QR reports "expired" rather than "already used".
func (t *Token) Redeem(now time.Time) error {
	if now.After(t.expiresAt) {
		return ErrTokenExpired
	}
	if t.consumed {
		return ErrTokenAlreadyUsed
	}

	t.consumed = true
	return nil
}

func (t *Token) Value() string        { return t.value }
func (t *Token) ClubID() uuid.UUID    { return t.clubID }
func (t *Token) IssuedAt() time.Time  { return t.issuedAt }
func (t *Token) ExpiresAt() time.Time { return t.expiresAt }
func (t *Token) Consumed() bool       { return t.consumed }
