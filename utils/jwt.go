package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// SessionHandleIssuer signs the opaque handle handed to browsers. The handle only
// names a stored session; backend tokens never leave the gateway.
type SessionHandleIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionHandleIssuer(secret string, ttl time.Duration) (*SessionHandleIssuer, error) {
	if secret == "" {
		return nil, errors.New("session secret is not configured")
	}
	return &SessionHandleIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed handle for the given session id.
func (i *SessionHandleIssuer) Issue(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// SessionID validates a handle and returns the session id it names.
func (i *SessionHandleIssuer) SessionID(handle string) (string, error) {
	token, err := jwt.Parse(handle, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session handle")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("session handle does not contain a valid 'sid' claim")
	}
	return sid, nil
}

// TTL is the lifetime of issued handles.
func (i *SessionHandleIssuer) TTL() time.Duration { return i.ttl }
