package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devhive/backend/internal/models"
	"github.com/devhive/backend/internal/service"
	"github.com/devhive/backend/internal/types"
)

const refreshCookieName = "refresh_token"

// AuthService is the slice of the auth service the handlers use
type AuthService interface {
	Signup(ctx context.Context, req *types.SignupRequest) (*models.Dev, error)
	Login(ctx context.Context, username, password string) (*models.Dev, error)
	GenerateAccessToken(id, username string) (string, error)
	GenerateRefreshToken(id string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	Refresh(ctx context.Context, token string) (string, error)
}

type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

// Signup handles POST /devs/signup. Input validation is one schema step
// on the bound request struct; uniqueness comes back from the store as a
// conflict error.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": signupValidationMessage(err), "ok": false})
		return
	}

	if _, err := h.auth.Signup(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "Username is already taken", "ok": false})
			return
		}
		log.Printf("Error Signup: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to signup", "ok": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed up Successfully", "ok": true})
}

// Login handles POST /devs/signin. Unknown username and wrong password
// produce the identical response so the message cannot be used to probe
// for usernames.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	dev, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Wrong username or password"})
			return
		}
		log.Printf("Error Login: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to sign in"})
		return
	}

	accessToken, err := h.auth.GenerateAccessToken(dev.ID, dev.Username)
	if err != nil {
		log.Printf("Error Login: generating access token: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to sign in"})
		return
	}

	refreshToken, err := h.auth.GenerateRefreshToken(dev.ID)
	if err != nil {
		log.Printf("Error Login: generating refresh token: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to sign in"})
		return
	}

	// Refresh token travels only in an HttpOnly cookie, scoped to the
	// API prefix; the body carries the access token and identity.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookieName, refreshToken, int(service.RefreshTokenTTL.Seconds()), "/api/devs", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Logged in successfully",
		"accessToken": accessToken,
		"data":        gin.H{"id": dev.ID},
	})
}

// Verify handles POST /devs/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var req types.VerifyTokenRequest
	_ = c.ShouldBindJSON(&req)

	if req.Token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized", "ok": false})
		return
	}

	if _, err := h.auth.ValidateToken(req.Token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized", "ok": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Authorized", "ok": true})
}

// Refresh handles POST /devs/refresh, minting a new access token from the
// refresh cookie (with a body fallback for non-browser clients).
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, _ := c.Cookie(refreshCookieName)
	if token == "" {
		var req types.RefreshRequest
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized", "ok": false})
		return
	}

	accessToken, err := h.auth.Refresh(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized", "ok": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}
