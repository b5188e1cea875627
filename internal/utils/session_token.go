package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/rand"   // secure random number generation
	"encoding/hex"  // hex encoding for session identifiers
	"errors"        // sentinel error values
	"time"          // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session"

// ErrInvalidSessionToken is returned when a session cookie cannot be parsed,
// fails signature verification, is expired, or is missing required claims.
var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims is what a verified session cookie resolves to.  SID is the
// opaque identifier looked up in the session store; UserID and Username are
// carried for convenience but the store remains the source of truth so that
// logout takes effect immediately.
type SessionClaims struct {
	SID      string // random session identifier
	UserID   uint64 // account id (JWT "sub")
	Username string // account username
}

// NewSessionID returns a cryptographically secure random identifier used as
// the server-side session key.  32 random bytes encode to 64 hex characters.
func NewSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// NewSessionToken builds and signs an HS256 JWT wrapping a session.  The
// token is placed in an HttpOnly cookie; the signature prevents tampering
// while the embedded sid keeps revocation server-side.
func NewSessionToken(secret string, claims SessionClaims, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":      claims.SID,
		"sub":      claims.UserID,
		"username": claims.Username,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
	})
	return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies the signature and expiry of a session token and
// extracts its claims.  Any failure collapses to ErrInvalidSessionToken; the
// caller treats the request as unauthenticated.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Type assert the signing method to HMAC; reject others.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return SessionClaims{}, ErrInvalidSessionToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidSessionToken
	}
	sid, _ := mc["sid"].(string)
	username, _ := mc["username"].(string)
	// JWT numeric values are decoded as float64.
	sub, _ := mc["sub"].(float64)
	if sid == "" || sub <= 0 {
		return SessionClaims{}, ErrInvalidSessionToken
	}
	return SessionClaims{SID: sid, UserID: uint64(sub), Username: username}, nil
}
