package sessionRepo

import (
	"context"
	"errors"

	"letsheal/models"
)

// ErrPartialSession is returned when a caller tries to persist a session without
// both a role and an access token.
var ErrPartialSession = errors.New("session requires both a role and an access token")

// Store persists the logged-in identity. Token, refresh token, role and profile are
// written and cleared as one unit.
type Store interface {
	// Load returns the stored session, or nil when the id names no complete session.
	Load(ctx context.Context, sessionID string) (*models.Session, error)
	// Save replaces whatever is stored under sessionID.
	Save(ctx context.Context, sessionID string, session models.Session) error
	// Clear removes every identity field stored under sessionID.
	Clear(ctx context.Context, sessionID string) error
}
