package services

import (
	"context"

	"bollybuzz-backend/internal/models"
	"bollybuzz-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	searchResultCap        = 10
	searchCandidates       = 200
	searchPrefixCandidates = 20
	suggestionCap          = 5
	railSize               = 5
	topRatedCap            = 10
	topRatedFetch          = 20
	topRatedMinVotes       = 50000
	defaultListLimit       = 30
	maxListLimit           = 100
	defaultRandomSize      = 30
)

type MovieService interface {
	List(ctx context.Context, page, limit int, year, genre, actor string) ([]models.Movie, int64, error)
	GetByMovieID(ctx context.Context, movieID string) (*models.Movie, error)
	Random(ctx context.Context, limit int) ([]models.Movie, error)
	Latest(ctx context.Context) ([]models.Movie, error)
	Trending(ctx context.Context) ([]models.Movie, error)
	TopRated(ctx context.Context) ([]models.Movie, error)
	Search(ctx context.Context, query string) ([]SearchResult, error)
	Suggestions(ctx context.Context, query string) ([]string, error)
}

type movieService struct {
	repo   repository.MovieRepository
	cache  *Cache
	logger *logrus.Logger
}

func NewMovieService(repo repository.MovieRepository, cache *Cache, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ClampListWindow normalizes a requested page/limit pair to the window
// the catalog actually serves. Handlers use the same clamp so pagination
// meta reflects the window that produced the rows.
func ClampListWindow(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return page, limit
}

func (s *movieService) List(ctx context.Context, page, limit int, year, genre, actor string) ([]models.Movie, int64, error) {
	page, limit = ClampListWindow(page, limit)
	return s.repo.FindAll(ctx, page, limit, year, genre, actor)
}

func (s *movieService) GetByMovieID(ctx context.Context, movieID string) (*models.Movie, error) {
	if movieID == "" {
		return nil, invalid("movie ID is required")
	}

	movie, err := s.repo.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}

func (s *movieService) Random(ctx context.Context, limit int) ([]models.Movie, error) {
	if limit < 1 {
		limit = defaultRandomSize
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.Random(ctx, limit)
}

func (s *movieService) Latest(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if s.cache.Get("movies:latest", &movies) {
		return movies, nil
	}

	movies, err := s.repo.Latest(ctx, railSize)
	if err != nil {
		return nil, err
	}

	s.cache.Set("movies:latest", movies)
	return movies, nil
}

func (s *movieService) Trending(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if s.cache.Get("movies:trending", &movies) {
		return movies, nil
	}

	movies, err := s.repo.Trending(ctx, railSize)
	if err != nil {
		return nil, err
	}

	s.cache.Set("movies:trending", movies)
	return movies, nil
}

// TopRated wants well-voted movies first; if the vote floor leaves the
// rail short it retries without the floor, mirroring the sparse spots in
// the seeded data.
func (s *movieService) TopRated(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if s.cache.Get("movies:top-rated", &movies) {
		return movies, nil
	}

	movies, err := s.repo.TopRated(ctx, topRatedMinVotes, topRatedFetch)
	if err != nil {
		return nil, err
	}
	if len(movies) < topRatedCap {
		movies, err = s.repo.TopRated(ctx, 1, topRatedFetch)
		if err != nil {
			return nil, err
		}
	}
	if len(movies) > topRatedCap {
		movies = movies[:topRatedCap]
	}

	s.cache.Set("movies:top-rated", movies)
	return movies, nil
}

// Search returns ranked fuzzy matches. An empty query short-circuits to
// an empty result without touching the store. Exact and prefix title
// matches are fetched separately and merged ahead of the bounded
// subsequence scan, so a broad query can never push them out of the
// candidate set.
func (s *movieService) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if query == "" {
		return []SearchResult{}, nil
	}

	prefix, err := s.repo.FindByTitlePrefix(ctx, query, searchPrefixCandidates)
	if err != nil {
		return nil, err
	}

	matched, err := s.repo.FindMatching(ctx, FuzzyPattern(query), searchCandidates)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(prefix)+len(matched))
	candidates := make([]models.Movie, 0, len(prefix)+len(matched))
	for _, m := range append(prefix, matched...) {
		if seen[m.MovieID] {
			continue
		}
		seen[m.MovieID] = true
		candidates = append(candidates, m)
	}

	return RankMovies(candidates, query, searchResultCap)
}

func (s *movieService) Suggestions(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}

	titles, err := s.repo.TitleSuggestions(ctx, FuzzyPattern(query), suggestionCap)
	if err != nil {
		return nil, err
	}
	if titles == nil {
		titles = []string{}
	}
	return titles, nil
}
