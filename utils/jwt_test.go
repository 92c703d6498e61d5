package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandleRoundTrip(t *testing.T) {
	issuer, err := NewSessionHandleIssuer("secret", time.Hour)
	require.NoError(t, err)

	handle, err := issuer.Issue("sid-1")
	require.NoError(t, err)

	sid, err := issuer.SessionID(handle)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", sid)
}

func TestSessionHandleRejectsForeignSignature(t *testing.T) {
	a, _ := NewSessionHandleIssuer("secret-a", time.Hour)
	b, _ := NewSessionHandleIssuer("secret-b", time.Hour)

	handle, err := a.Issue("sid-1")
	require.NoError(t, err)

	_, err = b.SessionID(handle)
	assert.Error(t, err)
}

func TestSessionHandleRejectsExpired(t *testing.T) {
	issuer, _ := NewSessionHandleIssuer("secret", -time.Minute)
	handle, err := issuer.Issue("sid-1")
	require.NoError(t, err)

	_, err = issuer.SessionID(handle)
	assert.Error(t, err)
}

func TestNewSessionHandleIssuerRequiresSecret(t *testing.T) {
	_, err := NewSessionHandleIssuer("", time.Hour)
	assert.Error(t, err)
}
