package routes

import (
	"bollybuzz-backend/internal/handlers"
	"bollybuzz-backend/internal/middleware"
	"bollybuzz-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	auth services.AuthService,
	movieHandler *handlers.MovieHandler,
	ratingHandler *handlers.RatingHandler,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	uploadHandler *handlers.UploadHandler,
) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	requireAuth := middleware.RequireAuth(auth)
	optionalAuth := middleware.OptionalAuth(auth)

	// Movie routes - catalog browsing and search
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.ListMovies)
		movies.Get("/random", movieHandler.RandomMovies)
		movies.Get("/latest", movieHandler.LatestMovies)
		movies.Get("/trending", movieHandler.TrendingMovies)
		movies.Get("/top-rated", movieHandler.TopRatedMovies)
		movies.Get("/search", movieHandler.SearchMovies)
		movies.Get("/suggestions", movieHandler.TitleSuggestions)
		movies.Get("/:movieID", movieHandler.GetMovie)
	}

	// Rating routes - the movie is addressed by the movieId query parameter
	ratings := v1.Group("/ratings")
	{
		ratings.Get("/stats", ratingHandler.RatingStats)
		ratings.Get("/reviews", ratingHandler.MovieReviews)
		ratings.Get("/", optionalAuth, ratingHandler.GetUserRating)
		ratings.Post("/", requireAuth, ratingHandler.SubmitRating)
		ratings.Delete("/", requireAuth, ratingHandler.DeleteRating)
	}

	// Auth routes - credentials, session cookie, password reset
	authGroup := v1.Group("/auth")
	{
		authGroup.Post("/signup", authHandler.Signup)
		authGroup.Post("/signin", authHandler.Signin)
		authGroup.Post("/signout", authHandler.Signout)
		authGroup.Get("/check", requireAuth, authHandler.CheckAuth)
		authGroup.Post("/reset-password", authHandler.RequestPasswordReset)
		authGroup.Post("/reset-password/:token", authHandler.ConfirmPasswordReset)
	}

	// User routes - profile, history, recommendations
	user := v1.Group("/user", requireAuth)
	{
		user.Get("/profile", userHandler.GetProfile)
		user.Put("/profile", userHandler.UpdateProfile)
		user.Get("/profile/ratings", userHandler.GetProfileOverview)
		user.Get("/ratings", userHandler.GetUserRatings)
		user.Get("/recommendations", userHandler.GetRecommendations)
	}

	upload := v1.Group("/upload", requireAuth)
	{
		upload.Get("/presign", uploadHandler.PresignPhotoUpload)
	}
}
