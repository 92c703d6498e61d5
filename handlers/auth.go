package handlers

import (
	"context"
	"net/http"
	"time"

	sessionRepo "letsheal/database/repository/session"
	"letsheal/middleware"
	"letsheal/models"
	"letsheal/services/policy"
	"letsheal/services/remote"
	"letsheal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthAPI is the part of the remote client used for logging in.
type AuthAPI interface {
	Login(ctx context.Context, in remote.LoginRequest) (*remote.LoginResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}

// HandleIssuer signs session handles.
type HandleIssuer interface {
	Issue(sessionID string) (string, error)
	TTL() time.Duration
}

// ImageResolver turns stored image references into loadable URLs.
type ImageResolver interface {
	Resolve(ref string) string
}

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	api    AuthAPI
	store  sessionRepo.Store
	issuer HandleIssuer
	images ImageResolver
	cookie CookieConfig
	errs   errorResponder
}

func NewAuthHandler(api AuthAPI, store sessionRepo.Store, issuer HandleIssuer, images ImageResolver, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{
		api:    api,
		store:  store,
		issuer: issuer,
		images: images,
		cookie: cookie,
		errs:   errorResponder{sessions: store},
	}
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// SessionView is what clients learn about the caller's identity.
type SessionView struct {
	Authenticated bool               `json:"authenticated"`
	Role          models.Role        `json:"role"`
	Profile       *models.Profile    `json:"profile,omitempty"`
	Permissions   models.Permissions `json:"permissions"`
}

func (h *AuthHandler) view(s *models.Session) SessionView {
	v := SessionView{
		Authenticated: s.Authenticated(),
		Role:          s.CurrentRole(),
		Permissions:   policy.PermittedActions(s.CurrentRole()),
	}
	if v.Authenticated {
		p := s.Profile
		p.ImageRef = h.images.Resolve(p.ImageRef)
		v.Profile = &p
	}
	return v
}

// Login authenticates against the backend and stores the resulting session.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	resp, err := h.api.Login(ctx, remote.LoginRequest{Email: in.Email, Password: in.Password, Role: in.Role})
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	if resp.NeedsRoleSelection() {
		c.JSON(http.StatusConflict, gin.H{
			"message": "Multiple roles found. Please select a role to continue.",
			"roles":   resp.Roles,
		})
		return
	}

	role := models.ParseRole(resp.Role)
	if resp.AccessToken == "" || role == models.RoleGuest {
		utils.GetLogger().Warn("Login response without usable identity", zap.String("role", resp.Role))
		utils.JSONError(c, http.StatusBadGateway, "Login failed. Please try again.", "backend returned no token or an unknown role")
		return
	}

	session := models.Session{
		Role:         role,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Profile:      models.ProfileFromLoginData(role, resp.Data),
	}
	if prev := middleware.CurrentSessionID(c); prev != "" {
		if err := h.store.Clear(ctx, prev); err != nil {
			utils.GetLogger().Warn("Failed to clear previous session", zap.String("sessionID", prev), zap.Error(err))
		}
	}
	sid := uuid.NewString()
	if err := h.store.Save(ctx, sid, session); err != nil {
		utils.GetLogger().Error("Failed to save session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed. Please try again.", "")
		return
	}
	handle, err := h.issuer.Issue(sid)
	if err != nil {
		utils.GetLogger().Error("Failed to issue session handle", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed. Please try again.", "")
		return
	}

	h.setCookie(c, handle, int(h.issuer.TTL().Seconds()))
	middleware.SetSession(c, sid, &session)
	view := h.view(&session)
	c.JSON(http.StatusOK, gin.H{
		"token":      handle,
		"session":    view,
		"redirectTo": view.Permissions.HomePath,
	})
}

// Logout clears the stored session and the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c.Request.Context(), c, h.store); err != nil {
		utils.GetLogger().Error("Failed to clear session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed. Please try again.", "")
		return
	}
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirectTo": "/login"})
}

// Session describes the caller; guests get guest navigation.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, h.view(middleware.CurrentSession(c)))
}

// Refresh exchanges the stored refresh token for a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	session := middleware.CurrentSession(c)
	if session.RefreshToken == "" {
		utils.JSONErrorBody(c, http.StatusUnauthorized, utils.ErrorResponse{Message: "Session cannot be refreshed", Relogin: true})
		return
	}
	ctx := c.Request.Context()
	access, err := h.api.RefreshAccessToken(ctx, session.RefreshToken)
	if err != nil {
		h.errs.respond(c, err, "")
		return
	}
	updated := *session
	updated.AccessToken = access
	if err := h.store.Save(ctx, middleware.CurrentSessionID(c), updated); err != nil {
		utils.GetLogger().Error("Failed to save refreshed session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not refresh session", "")
		return
	}
	c.JSON(http.StatusOK, h.view(&updated))
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
