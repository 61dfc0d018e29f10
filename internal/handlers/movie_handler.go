package handlers

import (
	"strconv"

	"bollybuzz-backend/internal/services"
	"bollybuzz-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// ListMovies godoc
// @Summary List movies
// @Description Paginated catalog listing with optional year, genre, and actor filters
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(30)
// @Param year query string false "Filter by release year"
// @Param genre query string false "Filter by genre (substring, case-insensitive)"
// @Param actor query string false "Filter by cast member (substring, case-insensitive)"
// @Success 200 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "30"))
	page, limit = services.ClampListWindow(page, limit)
	year := c.Query("year", "")
	genre := c.Query("genre", "")
	actor := c.Query("actor", "")

	movies, total, err := h.service.List(ctx, page, limit, year, genre, actor)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovie godoc
// @Summary Get a movie
// @Tags movies
// @Produce json
// @Param movieID path string true "Catalog movie identifier"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{movieID} [get]
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	movie, err := h.service.GetByMovieID(ctx, c.Params("movieID"))
	if err != nil {
		if err != services.ErrNotFound {
			h.logger.WithError(err).WithField("movie_id", c.Params("movieID")).Error("Failed to get movie")
		}
		return respondError(c, err, "Failed to retrieve movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// RandomMovies godoc
// @Summary Random movie sample
// @Tags movies
// @Produce json
// @Param limit query int false "Sample size" default(30)
// @Success 200 {object} utils.StandardResponse
// @Router /movies/random [get]
func (h *MovieHandler) RandomMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	limit, _ := strconv.Atoi(c.Query("limit", "30"))
	movies, err := h.service.Random(ctx, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get random movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// LatestMovies godoc
// @Summary Newest movies with a poster
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /movies/latest [get]
func (h *MovieHandler) LatestMovies(c *fiber.Ctx) error {
	movies, err := h.service.Latest(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get latest movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve latest movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Latest movies retrieved successfully", movies)
}

// TrendingMovies godoc
// @Summary Most-voted movies
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /movies/trending [get]
func (h *MovieHandler) TrendingMovies(c *fiber.Ctx) error {
	movies, err := h.service.Trending(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get trending movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve trending movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Trending movies retrieved successfully", movies)
}

// TopRatedMovies godoc
// @Summary Top-rated movies
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /movies/top-rated [get]
func (h *MovieHandler) TopRatedMovies(c *fiber.Ctx) error {
	movies, err := h.service.TopRated(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get top rated movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve top rated movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Top rated movies retrieved successfully", movies)
}

// SearchMovies godoc
// @Summary Fuzzy search with relevance ranking
// @Description Matches the query as a character subsequence of title, cast, or director
// @Tags movies
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} utils.StandardResponse
// @Router /movies/search [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	query := c.Query("q", "")

	results, err := h.service.Search(c.Context(), query)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Search failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Search failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Search results retrieved successfully", results)
}

// TitleSuggestions godoc
// @Summary Autocomplete titles
// @Tags movies
// @Produce json
// @Param q query string true "Partial title"
// @Success 200 {object} utils.StandardResponse
// @Router /movies/suggestions [get]
func (h *MovieHandler) TitleSuggestions(c *fiber.Ctx) error {
	query := c.Query("q", "")

	titles, err := h.service.Suggestions(c.Context(), query)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Failed to get suggestions")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve suggestions")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Suggestions retrieved successfully", titles)
}
