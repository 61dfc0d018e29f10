package repository

import (
	"context"
	"errors"
	"time"

	"bollybuzz-backend/internal/database"
	"bollybuzz-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	FindByUserAndMovie(ctx context.Context, userID uint, movieID string) (*models.Rating, error)
	Upsert(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, userID uint, movieID string) error
	StatsForMovie(ctx context.Context, movieID string) (*models.RatingStats, error)
	FindByMovie(ctx context.Context, movieID string) ([]models.Rating, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Rating, error)
	FindHighRated(ctx context.Context, userID uint, minRating int) ([]models.Rating, error)
}

type ratingRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewRatingRepository(db *database.Database) RatingRepository {
	return &ratingRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *ratingRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *ratingRepository) FindByUserAndMovie(ctx context.Context, userID uint, movieID string) (*models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

// Upsert relies on the (user_id, movie_id) unique index: a second
// submission overwrites in place and stamps updated_at. Racing
// submissions resolve as last write wins at the store.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rating.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "review", "updated_at"}),
		}).
		Create(rating).Error
}

// Delete of a missing row is a no-op, not an error.
func (r *ratingRepository) Delete(ctx context.Context, userID uint, movieID string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.Rating{}).Error
}

func (r *ratingRepository) StatsForMovie(ctx context.Context, movieID string) (*models.RatingStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var stats models.RatingStats
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) as average_rating, COUNT(*) as total_ratings").
		Where("movie_id = ?", movieID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ratingRepository) FindByMovie(ctx context.Context, movieID string) ([]models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) FindByUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) FindHighRated(ctx context.Context, userID uint, minRating int) ([]models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND rating >= ?", userID, minRating).
		Find(&ratings).Error
	return ratings, err
}
