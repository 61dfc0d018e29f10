package handlers

import (
	"bollybuzz-backend/internal/middleware"
	"bollybuzz-backend/internal/services"
	"bollybuzz-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags user
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	claims := middleware.CurrentUser(c)

	user, err := h.service.Profile(c.Context(), claims.UserID)
	if err != nil {
		if err != services.ErrNotFound {
			h.logger.WithError(err).Error("Failed to get profile")
		}
		return respondError(c, err, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Tags user
// @Accept json
// @Produce json
// @Param profile body services.ProfileUpdate true "Profile fields"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Router /user/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	claims := middleware.CurrentUser(c)

	var update services.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.UpdateProfile(c.Context(), claims.UserID, update)
	if err != nil {
		if !services.IsValidation(err) {
			h.logger.WithError(err).Error("Failed to update profile")
		}
		return respondError(c, err, "Failed to update profile")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Profile updated successfully", user)
}

// GetUserRatings godoc
// @Summary Current user's ratings with movie details
// @Tags user
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /user/ratings [get]
func (h *UserHandler) GetUserRatings(c *fiber.Ctx) error {
	claims := middleware.CurrentUser(c)

	ratings, err := h.service.RatingsWithMovies(c.Context(), claims.UserID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get user ratings")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve ratings")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Ratings retrieved successfully", ratings)
}

// GetRecommendations godoc
// @Summary Movie recommendations for the current user
// @Tags user
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /user/recommendations [get]
func (h *UserHandler) GetRecommendations(c *fiber.Ctx) error {
	claims := middleware.CurrentUser(c)

	movies, err := h.service.Recommendations(c.Context(), claims.UserID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get recommendations")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve recommendations")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Recommendations retrieved successfully", movies)
}

// GetProfileOverview godoc
// @Summary Profile page aggregate
// @Description Ratings joined with movies plus genre/year neighbor recommendations
// @Tags user
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /user/profile/ratings [get]
func (h *UserHandler) GetProfileOverview(c *fiber.Ctx) error {
	claims := middleware.CurrentUser(c)

	overview, err := h.service.ProfileOverview(c.Context(), claims.UserID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get profile overview")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve profile data")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Profile data retrieved successfully", overview)
}
