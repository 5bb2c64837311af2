package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bridal-rental/internal/audit"
	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
	"github.com/BruksfildServices01/bridal-rental/internal/middleware"
	"github.com/BruksfildServices01/bridal-rental/internal/session"
)

type AuthHandler struct {
	sessions *session.Service
	audit    *audit.Dispatcher
	secure   bool
}

func NewAuthHandler(
	sessions *session.Service,
	audit *audit.Dispatcher,
	secure bool,
) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		audit:    audit,
		secure:   secure,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Shared ---------

func (h *AuthHandler) login(c *gin.Context, email, password string) (string, session.Principal, error) {
	token, p, err := h.sessions.Login(c.Request.Context(), email, password)
	if err != nil {
		return "", session.Principal{}, err
	}

	h.setCookie(c, token, p.ExpiresAt)
	h.audit.Dispatch(audit.Event{
		Action:  audit.ActionLogin,
		Details: fmt.Sprintf("%s logged in", p.Email),
	})
	return token, p, nil
}

// logout revokes whatever session the request carries. It never fails the
// request: an unknown or expired token just means there is nothing to revoke.
func (h *AuthHandler) logout(c *gin.Context) {
	defer h.clearCookie(c)

	token, ok := middleware.Token(c)
	if !ok {
		return
	}
	p, err := h.sessions.Authenticate(c.Request.Context(), token)
	if err != nil {
		return
	}
	if err := h.sessions.Logout(c.Request.Context(), p); err != nil {
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:  audit.ActionLogout,
		Details: fmt.Sprintf("%s logged out", p.Email),
	})
}

func (h *AuthHandler) setCookie(c *gin.Context, token string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.secure, true)
}

func (h *AuthHandler) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secure, true)
}

// --------- API ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	token, p, err := h.login(c, req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err, "login_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"email":      p.Email,
		"expires_at": p.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.logout(c)
	c.Status(http.StatusNoContent)
}
