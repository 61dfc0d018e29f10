package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"bollybuzz-backend/internal/models"
	"bollybuzz-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	recommendationCap        = 6
	recommendationMinRating  = 4
	profileRecommendationCap = 10
	neighborYearWindow       = 10
	neighborFetchLimit       = 200
)

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	DisplayName string `json:"displayName"`
	DateOfBirth string `json:"dateOfBirth"`
	PhotoURL    string `json:"photoUrl"`
}

// PhotoRemover deletes a stored photo object. *PhotoStore implements it.
type PhotoRemover interface {
	DeletePhoto(photoURL string) error
}

type UserService interface {
	Profile(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error)
	RatingsWithMovies(ctx context.Context, userID uint) ([]models.UserRating, error)
	Recommendations(ctx context.Context, userID uint) ([]models.Movie, error)
	ProfileOverview(ctx context.Context, userID uint) (*models.ProfileOverview, error)
}

type userService struct {
	users   repository.UserRepository
	ratings repository.RatingRepository
	movies  repository.MovieRepository
	photos  PhotoRemover
	logger  *logrus.Logger
}

func NewUserService(
	users repository.UserRepository,
	ratings repository.RatingRepository,
	movies repository.MovieRepository,
	photos PhotoRemover,
	logger *logrus.Logger,
) UserService {
	return &userService{
		users:   users,
		ratings: ratings,
		movies:  movies,
		photos:  photos,
		logger:  logger,
	}
}

func (s *userService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.User, error) {
	if utf8.RuneCountInString(update.DisplayName) > nameMaxLength {
		return nil, invalid("display name cannot be more than 50 characters")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	oldPhoto := user.PhotoURL

	user.DisplayName = update.DisplayName
	user.DateOfBirth = update.DateOfBirth
	user.PhotoURL = update.PhotoURL

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	// The replaced object is removed only once the new URL is stored,
	// so a failed update never leaves the profile pointing at a deleted
	// photo.
	if s.photos != nil && oldPhoto != "" && update.PhotoURL != "" && update.PhotoURL != oldPhoto {
		if err := s.photos.DeletePhoto(oldPhoto); err != nil {
			s.logger.WithError(err).Warn("Failed to delete old profile photo")
		}
	}
	return user, nil
}

func (s *userService) RatingsWithMovies(ctx context.Context, userID uint) ([]models.UserRating, error) {
	ratings, err := s.ratings.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return []models.UserRating{}, nil
	}

	ids := make([]string, 0, len(ratings))
	for _, r := range ratings {
		ids = append(ids, r.MovieID)
	}

	movies, err := s.movies.FindByMovieIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Movie, len(movies))
	for i := range movies {
		byID[movies[i].MovieID] = &movies[i]
	}

	out := make([]models.UserRating, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, models.UserRating{Rating: r, Movie: byID[r.MovieID]})
	}
	return out, nil
}

// Recommendations excludes everything the user already rated highly; a
// user with no high ratings gets an arbitrary sample instead.
func (s *userService) Recommendations(ctx context.Context, userID uint) ([]models.Movie, error) {
	liked, err := s.ratings.FindHighRated(ctx, userID, recommendationMinRating)
	if err != nil {
		return nil, err
	}

	if len(liked) == 0 {
		movies, err := s.movies.FindFirst(ctx, recommendationCap)
		if err != nil {
			return nil, err
		}
		return movies, nil
	}

	rated := make([]string, 0, len(liked))
	for _, r := range liked {
		rated = append(rated, r.MovieID)
	}

	return s.movies.FindExcluding(ctx, rated, recommendationCap)
}

// ProfileOverview joins the user's ratings with movie details and adds
// neighbor recommendations: same genre, within ten years, never the
// source movie, deduplicated across all rated movies.
func (s *userService) ProfileOverview(ctx context.Context, userID uint) (*models.ProfileOverview, error) {
	rated, err := s.RatingsWithMovies(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &models.ProfileOverview{
		Ratings:         rated,
		Recommendations: []models.Movie{},
	}

	seen := make(map[string]bool)
	for _, ur := range rated {
		if ur.Movie == nil {
			continue
		}
		candidates, err := s.movies.FindByGenre(ctx, ur.Movie.Genre, neighborFetchLimit)
		if err != nil {
			return nil, err
		}
		for _, n := range neighborMovies(ur.Movie, candidates) {
			if seen[n.MovieID] {
				continue
			}
			seen[n.MovieID] = true
			overview.Recommendations = append(overview.Recommendations, n)
			if len(overview.Recommendations) >= profileRecommendationCap {
				return overview, nil
			}
		}
	}
	return overview, nil
}

// neighborMovies filters same-genre candidates down to those within the
// year window of the source, excluding the source itself. Candidates
// without a parseable year are skipped.
func neighborMovies(source *models.Movie, candidates []models.Movie) []models.Movie {
	srcYear, ok := source.YearNumber()
	if !ok {
		return nil
	}

	var out []models.Movie
	for i := range candidates {
		c := &candidates[i]
		if c.MovieID == source.MovieID {
			continue
		}
		year, ok := c.YearNumber()
		if !ok {
			continue
		}
		if year < srcYear-neighborYearWindow || year > srcYear+neighborYearWindow {
			continue
		}
		out = append(out, *c)
	}
	return out
}
