package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default lifetimes: sessions last 10 days, password-reset tokens 1 hour.
const (
	DefaultSessionTTL = 10 * 24 * time.Hour
	DefaultResetTTL   = time.Hour
)

// ErrInvalidToken covers bad signatures, malformed tokens and expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by both session and reset tokens. Reset
// tokens leave Role empty.
type Claims struct {
	UserID string `json:"_id"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs and verifies bearer tokens with a shared HMAC secret.
type Manager struct {
	secret     []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
}

func NewManager(secret []byte) *Manager {
	return &Manager{
		secret:     secret,
		sessionTTL: DefaultSessionTTL,
		resetTTL:   DefaultResetTTL,
	}
}

// WithTTL overrides the default lifetimes. Used by tests to exercise expiry.
func (m *Manager) WithTTL(session, reset time.Duration) *Manager {
	m.sessionTTL = session
	m.resetTTL = reset
	return m
}

// IssueSession signs a token carrying the user id and role.
func (m *Manager) IssueSession(userID, role string) (string, error) {
	return m.sign(Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.sessionTTL)),
		},
	})
}

// IssueReset signs a short-lived token for password-reset links.
func (m *Manager) IssueReset(userID string) (string, error) {
	return m.sign(Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.resetTTL)),
		},
	})
}

func (m *Manager) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token, returning its claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
