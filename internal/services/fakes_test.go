package services

import (
	"context"
	"io"
	"strings"
	"time"

	"bollybuzz-backend/internal/models"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeUserRepo is an in-memory UserRepository keyed by normalized email.
type fakeUserRepo struct {
	users     map[string]*models.User
	nextID    uint
	creates   int
	updates   int
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.creates++
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates++
	copied := *user
	r.users[user.Email] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := r.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByResetToken(_ context.Context, tokenHash string, now time.Time) (*models.User, error) {
	for _, u := range r.users {
		if u.ResetPasswordToken == tokenHash && u.ResetPasswordExpires != nil && u.ResetPasswordExpires.After(now) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// fakeRatingRepo is an in-memory RatingRepository keyed by (user, movie).
type fakeRatingRepo struct {
	ratings map[uint]map[string]*models.Rating
	upserts int
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: map[uint]map[string]*models.Rating{}}
}

func (r *fakeRatingRepo) FindByUserAndMovie(_ context.Context, userID uint, movieID string) (*models.Rating, error) {
	if entry, ok := r.ratings[userID][movieID]; ok {
		copied := *entry
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeRatingRepo) Upsert(_ context.Context, rating *models.Rating) error {
	r.upserts++
	if r.ratings[rating.UserID] == nil {
		r.ratings[rating.UserID] = map[string]*models.Rating{}
	}
	existing := r.ratings[rating.UserID][rating.MovieID]
	copied := *rating
	if existing != nil {
		copied.ID = existing.ID
		copied.CreatedAt = existing.CreatedAt
	}
	copied.UpdatedAt = time.Now()
	r.ratings[rating.UserID][rating.MovieID] = &copied
	return nil
}

func (r *fakeRatingRepo) Delete(_ context.Context, userID uint, movieID string) error {
	delete(r.ratings[userID], movieID)
	return nil
}

func (r *fakeRatingRepo) StatsForMovie(_ context.Context, movieID string) (*models.RatingStats, error) {
	stats := &models.RatingStats{}
	sum := 0
	for _, byMovie := range r.ratings {
		if entry, ok := byMovie[movieID]; ok {
			sum += entry.Rating
			stats.TotalRatings++
		}
	}
	if stats.TotalRatings > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalRatings)
	}
	return stats, nil
}

func (r *fakeRatingRepo) FindByMovie(_ context.Context, movieID string) ([]models.Rating, error) {
	var out []models.Rating
	for _, byMovie := range r.ratings {
		if entry, ok := byMovie[movieID]; ok {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (r *fakeRatingRepo) FindByUser(_ context.Context, userID uint) ([]models.Rating, error) {
	var out []models.Rating
	for _, entry := range r.ratings[userID] {
		out = append(out, *entry)
	}
	return out, nil
}

func (r *fakeRatingRepo) FindHighRated(_ context.Context, userID uint, minRating int) ([]models.Rating, error) {
	var out []models.Rating
	for _, entry := range r.ratings[userID] {
		if entry.Rating >= minRating {
			out = append(out, *entry)
		}
	}
	return out, nil
}

// fakeMovieRepo serves a fixed catalog slice.
type fakeMovieRepo struct {
	movies []models.Movie
}

func (r *fakeMovieRepo) FindAll(_ context.Context, page, limit int, year, genre, actor string) ([]models.Movie, int64, error) {
	return r.movies, int64(len(r.movies)), nil
}

func (r *fakeMovieRepo) FindByMovieID(_ context.Context, movieID string) (*models.Movie, error) {
	for i := range r.movies {
		if r.movies[i].MovieID == movieID {
			copied := r.movies[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMovieRepo) FindByMovieIDs(_ context.Context, movieIDs []string) ([]models.Movie, error) {
	wanted := make(map[string]bool, len(movieIDs))
	for _, id := range movieIDs {
		wanted[id] = true
	}
	var out []models.Movie
	for _, m := range r.movies {
		if wanted[m.MovieID] {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovieRepo) FindFirst(_ context.Context, limit int) ([]models.Movie, error) {
	if len(r.movies) > limit {
		return r.movies[:limit], nil
	}
	return r.movies, nil
}

func (r *fakeMovieRepo) FindExcluding(_ context.Context, excluded []string, limit int) ([]models.Movie, error) {
	skip := make(map[string]bool, len(excluded))
	for _, id := range excluded {
		skip[id] = true
	}
	var out []models.Movie
	for _, m := range r.movies {
		if skip[m.MovieID] {
			continue
		}
		out = append(out, m)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeMovieRepo) FindByGenre(_ context.Context, genre string, limit int) ([]models.Movie, error) {
	var out []models.Movie
	for _, m := range r.movies {
		if m.Genre == genre {
			out = append(out, m)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeMovieRepo) FindByTitlePrefix(_ context.Context, prefix string, limit int) ([]models.Movie, error) {
	var out []models.Movie
	for _, m := range r.movies {
		if strings.HasPrefix(strings.ToLower(m.Title), strings.ToLower(prefix)) {
			out = append(out, m)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeMovieRepo) FindMatching(_ context.Context, pattern string, limit int) ([]models.Movie, error) {
	return r.movies, nil
}

func (r *fakeMovieRepo) TitleSuggestions(_ context.Context, pattern string, limit int) ([]string, error) {
	var out []string
	for _, m := range r.movies {
		out = append(out, m.Title)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *fakeMovieRepo) Random(_ context.Context, limit int) ([]models.Movie, error) {
	return r.FindFirst(context.Background(), limit)
}

func (r *fakeMovieRepo) Latest(_ context.Context, limit int) ([]models.Movie, error) {
	return r.FindFirst(context.Background(), limit)
}

func (r *fakeMovieRepo) Trending(_ context.Context, limit int) ([]models.Movie, error) {
	return r.FindFirst(context.Background(), limit)
}

func (r *fakeMovieRepo) TopRated(_ context.Context, minVotes int64, limit int) ([]models.Movie, error) {
	return r.FindFirst(context.Background(), limit)
}

// fakePhotoRemover records deleted photo URLs.
type fakePhotoRemover struct {
	deleted []string
}

func (p *fakePhotoRemover) DeletePhoto(photoURL string) error {
	p.deleted = append(p.deleted, photoURL)
	return nil
}

// fakeMailer records sent reset mails, optionally failing.
type fakeMailer struct {
	sent []string
	fail error
}

func (m *fakeMailer) SendResetEmail(to, resetToken string) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, to+":"+resetToken)
	return nil
}
