package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"bollybuzz-backend/internal/models"
	"bollybuzz-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type RatingService interface {
	GetUserRating(ctx context.Context, userID uint, movieID string) (*models.Rating, error)
	Submit(ctx context.Context, userID uint, movieID string, rating int, review string) (*models.Rating, error)
	Remove(ctx context.Context, userID uint, movieID string) error
	Stats(ctx context.Context, movieID string) (*models.RatingStats, error)
	Reviews(ctx context.Context, movieID string) ([]models.Rating, error)
}

type ratingService struct {
	repo   repository.RatingRepository
	logger *logrus.Logger
}

func NewRatingService(repo repository.RatingRepository, logger *logrus.Logger) RatingService {
	return &ratingService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ratingService) GetUserRating(ctx context.Context, userID uint, movieID string) (*models.Rating, error) {
	if movieID == "" {
		return nil, invalid("movie ID is required")
	}
	return s.repo.FindByUserAndMovie(ctx, userID, movieID)
}

func (s *ratingService) Submit(ctx context.Context, userID uint, movieID string, rating int, review string) (*models.Rating, error) {
	if movieID == "" {
		return nil, invalid("movie ID is required")
	}
	if rating < models.RatingMin || rating > models.RatingMax {
		return nil, invalid(fmt.Sprintf("rating must be between %d and %d", models.RatingMin, models.RatingMax))
	}
	if utf8.RuneCountInString(review) > models.ReviewMaxLength {
		return nil, invalid("review cannot be more than 500 characters")
	}

	entry := &models.Rating{
		UserID:  userID,
		MovieID: movieID,
		Rating:  rating,
		Review:  review,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	// Read back so the caller sees the stored row, including timestamps
	// kept from the original submission on overwrite.
	stored, err := s.repo.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back rating: %w", err)
	}
	if stored == nil {
		return entry, nil
	}
	return stored, nil
}

func (s *ratingService) Remove(ctx context.Context, userID uint, movieID string) error {
	if movieID == "" {
		return invalid("movie ID is required")
	}
	return s.repo.Delete(ctx, userID, movieID)
}

func (s *ratingService) Stats(ctx context.Context, movieID string) (*models.RatingStats, error) {
	if movieID == "" {
		return nil, invalid("movie ID is required")
	}

	stats, err := s.repo.StatsForMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &models.RatingStats{}
	}
	return stats, nil
}

func (s *ratingService) Reviews(ctx context.Context, movieID string) ([]models.Rating, error) {
	if movieID == "" {
		return nil, invalid("movie ID is required")
	}

	reviews, err := s.repo.FindByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Rating{}
	}
	return reviews, nil
}
