package sessionRepo

import (
	"encoding/json"
	"fmt"

	"letsheal/models"
)

// Persisted field names. They mirror the keys the web client kept in local storage.
const (
	fieldAccessToken  = "access_token"
	fieldRefreshToken = "refresh_token"
	fieldRole         = "user_role"
	fieldProfile      = "user_data"
)

func encodeRecord(s models.Session) (map[string]string, error) {
	if !s.Authenticated() {
		return nil, ErrPartialSession
	}
	profile, err := json.Marshal(s.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session profile: %w", err)
	}
	return map[string]string{
		fieldAccessToken:  s.AccessToken,
		fieldRefreshToken: s.RefreshToken,
		fieldRole:         s.Role.String(),
		fieldProfile:      string(profile),
	}, nil
}

// decodeRecord rebuilds a session from stored fields. A record missing the token or
// carrying no recognised role is a guest, never a partial session.
func decodeRecord(fields map[string]string) *models.Session {
	token := fields[fieldAccessToken]
	role := models.ParseRole(fields[fieldRole])
	if token == "" || role == models.RoleGuest {
		return nil
	}
	s := &models.Session{
		Role:         role,
		AccessToken:  token,
		RefreshToken: fields[fieldRefreshToken],
	}
	if raw := fields[fieldProfile]; raw != "" {
		// An unreadable profile leaves the identity intact with an empty profile.
		_ = json.Unmarshal([]byte(raw), &s.Profile)
	}
	return s
}
