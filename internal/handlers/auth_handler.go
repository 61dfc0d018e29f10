package handlers

import (
	"time"

	"bollybuzz-backend/internal/middleware"
	"bollybuzz-backend/internal/services"
	"bollybuzz-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service  services.AuthService
	tokenTTL time.Duration
	logger   *logrus.Logger
}

func NewAuthHandler(service services.AuthService, tokenTTL time.Duration, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetRequest struct {
	Email string `json:"email"`
}

type ResetConfirmRequest struct {
	Password string `json:"password"`
}

// Signup godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body SignupRequest true "Signup payload"
// @Success 201 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.Signup(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if !services.IsValidation(err) && err != services.ErrEmailTaken {
			h.logger.WithError(err).Error("Signup failed")
		}
		return respondError(c, err, "Failed to create account")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User created successfully", user)
}

// Signin godoc
// @Summary Sign in with email and password
// @Description Sets the session token as an httpOnly cookie and returns it in the body
// @Tags auth
// @Accept json
// @Produce json
// @Param signin body SigninRequest true "Credentials"
// @Success 200 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, token, err := h.service.Signin(c.Context(), req.Email, req.Password)
	if err != nil {
		if !services.IsValidation(err) && err != services.ErrInvalidCredentials {
			h.logger.WithError(err).Error("Signin failed")
		}
		return respondError(c, err, "Failed to sign in")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(h.tokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, "Signed in successfully", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Signout godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /auth/signout [post]
func (h *AuthHandler) Signout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, "Signed out successfully", nil)
}

// CheckAuth godoc
// @Summary Check the current session
// @Tags auth
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse
// @Router /auth/check [get]
func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Authenticated", fiber.Map{
		"authenticated": true,
		"user": fiber.Map{
			"id":    claims.UserID,
			"email": claims.Email,
			"name":  claims.Name,
		},
	})
}

// RequestPasswordReset godoc
// @Summary Request a password-reset email
// @Description Answers identically whether or not the account exists
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body ResetRequest true "Account email"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.RequestPasswordReset(c.Context(), req.Email); err != nil {
		if !services.IsValidation(err) {
			h.logger.WithError(err).Error("Password reset request failed")
		}
		return respondError(c, err, "Error sending reset email")
	}

	return utils.SuccessResponse(c, fiber.StatusOK,
		"If a user with this email exists, they will receive a password reset email.", nil)
}

// ConfirmPasswordReset godoc
// @Summary Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token from the email link"
// @Param reset body ResetConfirmRequest true "New password"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Router /auth/reset-password/{token} [post]
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req ResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.ConfirmPasswordReset(c.Context(), c.Params("token"), req.Password); err != nil {
		if !services.IsValidation(err) && err != services.ErrInvalidResetToken {
			h.logger.WithError(err).Error("Password reset failed")
		}
		return respondError(c, err, "Failed to reset password")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Password reset successful", nil)
}
