package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/dtos"
	"github.com/jobtrail/jobtrail/internal/middleware"
	"github.com/jobtrail/jobtrail/internal/services"
	"github.com/jobtrail/jobtrail/pkg/response"
)

type AuthHandler struct {
	AuthService *services.AuthService

	// CookieSecure is false in development so the cookie works over
	// plain http on localhost.
	CookieSecure bool
	CookieMaxAge int
}

func NewAuthHandler(auth *services.AuthService, cookieSecure bool, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		AuthService:  auth,
		CookieSecure: cookieSecure,
		CookieMaxAge: cookieMaxAge,
	}
}

// Register is POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// Login is POST /auth/login. On success the session ID goes into an
// httpOnly cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	sessionID, user, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, sessionID, h.CookieMaxAge, "/", "", h.CookieSecure, true)
	response.Success(c, user)
}

// Logout is POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(middleware.SessionCookie)
	if err == nil && sessionID != "" {
		if err := h.AuthService.Logout(c.Request.Context(), sessionID); err != nil {
			response.Error(c, err)
			return
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.CookieSecure, true)
	response.NoContent(c)
}

// RequestPasswordReset is POST /auth/password-reset/request.
// Always 204, regardless of whether the email exists.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dtos.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.AuthService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ConfirmPasswordReset is POST /auth/password-reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req dtos.PasswordResetConfirm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.AuthService.ConfirmPasswordReset(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
