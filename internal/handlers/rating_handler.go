package handlers

import (
	"bollybuzz-backend/internal/middleware"
	"bollybuzz-backend/internal/services"
	"bollybuzz-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RatingHandler struct {
	service services.RatingService
	logger  *logrus.Logger
}

func NewRatingHandler(service services.RatingService, logger *logrus.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		logger:  logger,
	}
}

type RatingRequest struct {
	MovieID string `json:"movieId"`
	Rating  int    `json:"rating"`
	Review  string `json:"review"`
}

// GetUserRating godoc
// @Summary Current user's rating for a movie
// @Description Returns null when not signed in or no rating exists
// @Tags ratings
// @Produce json
// @Param movieId query string true "Movie identifier"
// @Success 200 {object} utils.StandardResponse
// @Router /ratings [get]
func (h *RatingHandler) GetUserRating(c *fiber.Ctx) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		// Anonymous visitors simply have no rating.
		return utils.SuccessResponse(c, fiber.StatusOK, "No rating", nil)
	}

	rating, err := h.service.GetUserRating(c.Context(), claims.UserID, c.Query("movieId"))
	if err != nil {
		if !services.IsValidation(err) {
			h.logger.WithError(err).Error("Failed to get user rating")
		}
		return respondError(c, err, "Failed to retrieve rating")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Rating retrieved successfully", rating)
}

// SubmitRating godoc
// @Summary Submit or update a rating
// @Description Upserts the signed-in user's rating for a movie
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body RatingRequest true "Rating payload"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse
// @Router /ratings [post]
func (h *RatingHandler) SubmitRating(c *fiber.Ctx) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please sign in to rate movies")
	}

	var req RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rating, err := h.service.Submit(c.Context(), claims.UserID, req.MovieID, req.Rating, req.Review)
	if err != nil {
		if !services.IsValidation(err) {
			h.logger.WithError(err).Error("Failed to submit rating")
		}
		return respondError(c, err, "Failed to submit rating")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Rating saved successfully", rating)
}

// DeleteRating godoc
// @Summary Delete the current user's rating
// @Description Removing a rating that does not exist is a no-op
// @Tags ratings
// @Produce json
// @Param movieId query string true "Movie identifier"
// @Success 200 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse
// @Router /ratings [delete]
func (h *RatingHandler) DeleteRating(c *fiber.Ctx) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please sign in to continue")
	}

	if err := h.service.Remove(c.Context(), claims.UserID, c.Query("movieId")); err != nil {
		if !services.IsValidation(err) {
			h.logger.WithError(err).Error("Failed to delete rating")
		}
		return respondError(c, err, "Failed to delete rating")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Rating deleted successfully", nil)
}

// RatingStats godoc
// @Summary Aggregate rating statistics for a movie
// @Tags ratings
// @Produce json
// @Param movieId query string true "Movie identifier"
// @Success 200 {object} utils.StandardResponse
// @Router /ratings/stats [get]
func (h *RatingHandler) RatingStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context(), c.Query("movieId"))
	if err != nil {
		if !services.IsValidation(err) {
			h.logger.WithError(err).Error("Failed to get rating stats")
		}
		return respondError(c, err, "Failed to retrieve rating stats")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Rating stats retrieved successfully", stats)
}

// MovieReviews godoc
// @Summary All ratings and reviews for a movie
// @Tags ratings
// @Produce json
// @Param movieId query string true "Movie identifier"
// @Success 200 {object} utils.StandardResponse
// @Router /ratings/reviews [get]
func (h *RatingHandler) MovieReviews(c *fiber.Ctx) error {
	reviews, err := h.service.Reviews(c.Context(), c.Query("movieId"))
	if err != nil {
		if !services.IsValidation(err) {
			h.logger.WithError(err).Error("Failed to get reviews")
		}
		return respondError(c, err, "Failed to retrieve reviews")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", reviews)
}
