package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/spicemart/spicemart/internal/domain/errors"
	"github.com/spicemart/spicemart/internal/server/http/dto"
	"github.com/spicemart/spicemart/internal/server/http/middleware"
)

// AuthHandler processes registration, login, and profile endpoints.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	usr, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			errorMessage(c, http.StatusBadRequest, err)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			errorMessage(c, http.StatusConflict, err)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.AuthResponse{User: dto.ToUserResponse(*usr), Token: token})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	usr, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			errorMessage(c, http.StatusUnauthorized, err)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{User: dto.ToUserResponse(*usr), Token: token})
}

// AuthCheck handles GET /api/auth-check.
func (h *AuthHandler) AuthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AdminCheck handles GET /api/admin-check.
func (h *AuthHandler) AdminCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Profile handles PUT /api/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	usr, err := h.facade.UpdateProfile(c.Request.Context(), CurrentUserID(c), req.Name, req.Password, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			errorMessage(c, http.StatusBadRequest, err)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*usr))
}
