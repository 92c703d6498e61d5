package remote

import (
	"context"
	"encoding/json"
	"net/http"
)

// LoginRequest is the credential body for /login. Role is only needed when an
// email is registered under more than one role.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginResponse is the backend login answer. A multi-role account answers with
// Roles set and no tokens.
type LoginResponse struct {
	Success      bool           `json:"success"`
	Role         string         `json:"role"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	Data         map[string]any `json:"data"`
	Roles        []string       `json:"roles"`
	Message      string         `json:"message"`
	Error        string         `json:"error"`
}

// NeedsRoleSelection reports whether the backend asked the caller to pick a role.
func (r *LoginResponse) NeedsRoleSelection() bool {
	return r.Success && r.AccessToken == "" && len(r.Roles) > 0
}

// Login authenticates with the backend. Every rejection, including a bad password,
// comes back as a *ServerError carrying the backend's message; a 401 here is not
// an expired session.
func (c *Client) Login(ctx context.Context, in LoginRequest) (*LoginResponse, error) {
	resp, err := c.Do(ctx, http.MethodPost, apiPath("login"), "", in)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &ServerError{Status: resp.Status, Message: ExtractMessage(resp.Status, resp.ContentType, resp.Body)}
	}

	var out LoginResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, &ServerError{Status: resp.Status, Message: "unreadable login response"}
	}
	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "Invalid email or password"
		}
		return nil, &ServerError{Status: http.StatusUnauthorized, Message: msg}
	}
	return &out, nil
}

// RefreshAccessToken exchanges a refresh token for a new access token.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	var out struct {
		Access string `json:"access"`
	}
	err := c.call(ctx, http.MethodPost, apiPath("token/refresh"), "", map[string]string{"refresh": refreshToken}, &out)
	if err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", &ServerError{Status: http.StatusOK, Message: "refresh returned no access token"}
	}
	return out.Access, nil
}
