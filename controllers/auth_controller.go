package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/pg-server/middleware"
	"github.com/vnkhanh/pg-server/services"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Logout(ctx context.Context, token string) error
	ResolveSession(ctx context.Context, token string) (*services.SessionAdmin, error)
	CreateAdmin(ctx context.Context, actor *services.SessionAdmin, in services.CreateAdminInput) (*services.SessionAdmin, error)
}

// CookieConfig describes the admin session cookie.
type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
}

type AuthController struct {
	auth   Authenticator
	cookie CookieConfig
}

func NewAuthController(auth Authenticator, cookie CookieConfig) *AuthController {
	return &AuthController{auth: auth, cookie: cookie}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthController) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

// POST /api/auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	h.setCookie(c, sess.Token, int(time.Until(sess.ExpiresAt).Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin":   sess.Admin,
	})
}

// POST /api/auth/logout
func (h *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err, "Failed to log out")
			return
		}
	}
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GET /api/auth/session
func (h *AuthController) Session(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Name)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	admin, err := h.auth.ResolveSession(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "admin": admin})
}

// POST /api/admin/create-admin
// Open while no admin exists; afterwards OptionalAdmin must have found a superadmin.
func (h *AuthController) CreateAdmin(c *gin.Context) {
	var in services.CreateAdminInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}

	actor, _ := middleware.CurrentAdmin(c)
	admin, err := h.auth.CreateAdmin(c.Request.Context(), actor, in)
	if err != nil {
		respondError(c, err, "Failed to create admin")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin created successfully",
		"admin":   admin,
	})
}
