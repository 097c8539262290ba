package api

import (
	"errors"
	"net/http"
	"time"

	"bakehouse/internal/handler/dto/request"
	"bakehouse/internal/handler/dto/response"
	"bakehouse/internal/handler/middleware"
	"bakehouse/internal/pkg/config"
	"bakehouse/internal/pkg/cookie"
	"bakehouse/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth        usecase.AuthUsecase
	cookieCfg   config.CookieConfig
	tokenExpiry time.Duration
}

func NewAuthHandler(auth usecase.AuthUsecase, cfg config.Config) *AuthHandler {
	expiry, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		expiry = 24 * time.Hour
	}
	return &AuthHandler{auth: auth, cookieCfg: cfg.Cookie, tokenExpiry: expiry}
}

// @Summary Staff login
// @Description Authenticate against the request tenant; the token is also set as an HTTP-only cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), tenant, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		respondRepoErr(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, res.Token, h.tokenExpiry)
	c.JSON(http.StatusOK, response.LoginResponse{
		Token: res.Token,
		User:  response.FromUser(res.User),
	})
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} response.UserResponse
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	u, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondRepoErr(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

// @Summary Logout
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
