package models

import "fmt"

// Profile is the identity shown in the navigation bar.
type Profile struct {
	ID       int64  `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	ImageRef string `bson:"image_ref" json:"imageRef"` // raw backend path or URL, resolved at render time
}

// Session is the logged-in identity. Role and AccessToken are always present
// together; a zero Session is never stored.
type Session struct {
	Role         Role    `json:"role"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken,omitempty"`
	Profile      Profile `json:"profile"`
}

// Authenticated reports whether the session carries a usable identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != "" && s.Role != RoleGuest
}

// CurrentRole returns RoleGuest for a nil or unauthenticated session.
func (s *Session) CurrentRole() Role {
	if !s.Authenticated() {
		return RoleGuest
	}
	return s.Role
}

// ProfileFromLoginData normalises the role-specific `data` object of a login response.
func ProfileFromLoginData(role Role, data map[string]any) Profile {
	prefix := role.String()
	imageKey := prefix + "_image"
	if role == RoleAdmin {
		imageKey = "admin_profile_picture"
	}
	p := Profile{
		Name:     stringField(data, prefix+"_name"),
		Email:    stringField(data, prefix+"_email"),
		ImageRef: stringField(data, imageKey),
	}
	switch v := data["id"].(type) {
	case float64:
		p.ID = int64(v)
	case string:
		if n, err := ParseID(v); err == nil {
			p.ID = n
		}
	}
	if p.Name == "" {
		p.Name = defaultDisplayName(role)
	}
	return p
}

func stringField(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func defaultDisplayName(role Role) string {
	switch role {
	case RoleCustomer:
		return "Customer"
	case RoleTherapist:
		return "Therapist"
	case RoleAdmin:
		return "Admin"
	default:
		return "User"
	}
}
