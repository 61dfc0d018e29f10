package repository

import (
	"context"
	"errors"
	"time"

	"bollybuzz-backend/internal/database"
	"bollybuzz-backend/internal/models"

	"gorm.io/gorm"
)

// Numeric ordering over the seeded text columns. Rows holding the
// "Not Available" sentinel (or other junk) sort last instead of failing
// the cast.
const (
	ratingNumericExpr = "CASE WHEN rating ~ '^[0-9]+(\\.[0-9]+)?$' THEN rating::numeric ELSE NULL END"
	votesNumericExpr  = "CASE WHEN votes ~ '^[0-9][0-9,]*$' THEN replace(votes, ',', '')::bigint ELSE NULL END"
)

type MovieRepository interface {
	FindAll(ctx context.Context, page, limit int, year, genre, actor string) ([]models.Movie, int64, error)
	FindByMovieID(ctx context.Context, movieID string) (*models.Movie, error)
	FindByMovieIDs(ctx context.Context, movieIDs []string) ([]models.Movie, error)
	FindFirst(ctx context.Context, limit int) ([]models.Movie, error)
	FindExcluding(ctx context.Context, excluded []string, limit int) ([]models.Movie, error)
	FindByGenre(ctx context.Context, genre string, limit int) ([]models.Movie, error)
	FindByTitlePrefix(ctx context.Context, prefix string, limit int) ([]models.Movie, error)
	FindMatching(ctx context.Context, pattern string, limit int) ([]models.Movie, error)
	TitleSuggestions(ctx context.Context, pattern string, limit int) ([]string, error)
	Random(ctx context.Context, limit int) ([]models.Movie, error)
	Latest(ctx context.Context, limit int) ([]models.Movie, error)
	Trending(ctx context.Context, limit int) ([]models.Movie, error)
	TopRated(ctx context.Context, minVotes int64, limit int) ([]models.Movie, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) FindAll(ctx context.Context, page, limit int, year, genre, actor string) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	if year != "" {
		query = query.Where("year LIKE ?", "%"+year+"%")
	}
	if genre != "" {
		query = query.Where("genre ILIKE ?", "%"+genre+"%")
	}
	if actor != "" {
		query = query.Where("cast_members ILIKE ?", "%"+actor+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order(ratingNumericExpr + " DESC NULLS LAST").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) FindByMovieID(ctx context.Context, movieID string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Where("movie_id = ?", movieID).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByMovieIDs(ctx context.Context, movieIDs []string) ([]models.Movie, error) {
	if len(movieIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Where("movie_id IN ?", movieIDs).Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindFirst(ctx context.Context, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Order("id ASC").Limit(limit).Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindExcluding(ctx context.Context, excluded []string, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Movie{})
	if len(excluded) > 0 {
		query = query.Where("movie_id NOT IN ?", excluded)
	}

	var movies []models.Movie
	err := query.Order("id ASC").Limit(limit).Find(&movies).Error
	return movies, err
}

func (r *movieRepository) FindByGenre(ctx context.Context, genre string, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Where("genre = ?", genre).Limit(limit).Find(&movies).Error
	return movies, err
}

// FindByTitlePrefix matches titles starting with the literal prefix,
// case-insensitive. position() instead of LIKE keeps user input from
// acting as a wildcard.
func (r *movieRepository) FindByTitlePrefix(ctx context.Context, prefix string, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Where("position(lower(?) in lower(title)) = 1", prefix).
		Order(ratingNumericExpr + " DESC NULLS LAST").
		Order("id ASC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

// FindMatching returns bounded candidates for ranking, best-rated first
// so the bound cuts the weakest matches, not arbitrary rows.
func (r *movieRepository) FindMatching(ctx context.Context, pattern string, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Where("title ~* ? OR cast_members ~* ? OR director ~* ?", pattern, pattern, pattern).
		Order(ratingNumericExpr + " DESC NULLS LAST").
		Order("id ASC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) TitleSuggestions(ctx context.Context, pattern string, limit int) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var titles []string
	err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Where("title ~* ?", pattern).
		Order("title ASC").
		Limit(limit).
		Pluck("title", &titles).Error
	return titles, err
}

func (r *movieRepository) Random(ctx context.Context, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Order("RANDOM()").Limit(limit).Find(&movies).Error
	return movies, err
}

func (r *movieRepository) Latest(ctx context.Context, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Where("poster_url IS NOT NULL AND poster_url != '' AND lower(poster_url) != 'not available'").
		Order("year DESC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) Trending(ctx context.Context, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Order(votesNumericExpr + " DESC NULLS LAST").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) TopRated(ctx context.Context, minVotes int64, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Where("rating ~ '^[0-9]+(\\.[0-9]+)?$'").
		Where("votes ~ '^[0-9][0-9,]*$'").
		Where("replace(votes, ',', '')::bigint >= ?", minVotes).
		Order(ratingNumericExpr + " DESC").
		Order(votesNumericExpr + " DESC").
		Order("year DESC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}
