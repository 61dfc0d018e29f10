package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bollybuzz-backend/internal/models"
	"bollybuzz-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMovieService records the window List was called with and serves a
// fixed catalog.
type fakeMovieService struct {
	movies    []models.Movie
	total     int64
	listPage  int
	listLimit int
}

func (s *fakeMovieService) List(_ context.Context, page, limit int, year, genre, actor string) ([]models.Movie, int64, error) {
	s.listPage, s.listLimit = page, limit
	return s.movies, s.total, nil
}

func (s *fakeMovieService) GetByMovieID(_ context.Context, movieID string) (*models.Movie, error) {
	return nil, services.ErrNotFound
}

func (s *fakeMovieService) Random(_ context.Context, limit int) ([]models.Movie, error) {
	return s.movies, nil
}

func (s *fakeMovieService) Latest(_ context.Context) ([]models.Movie, error)   { return s.movies, nil }
func (s *fakeMovieService) Trending(_ context.Context) ([]models.Movie, error) { return s.movies, nil }
func (s *fakeMovieService) TopRated(_ context.Context) ([]models.Movie, error) { return s.movies, nil }

func (s *fakeMovieService) Search(_ context.Context, query string) ([]services.SearchResult, error) {
	return []services.SearchResult{}, nil
}

func (s *fakeMovieService) Suggestions(_ context.Context, query string) ([]string, error) {
	return []string{}, nil
}

func newMovieTestApp(svc services.MovieService) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	app := fiber.New()
	handler := NewMovieHandler(svc, log)
	app.Get("/movies", handler.ListMovies)
	return app
}

func listMeta(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Meta
}

func TestListMoviesZeroLimitAnswersDefaultWindow(t *testing.T) {
	svc := &fakeMovieService{movies: []models.Movie{{MovieID: "m1"}}, total: 90}
	app := newMovieTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/movies?limit=0&page=0", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	meta := listMeta(t, resp)
	assert.Equal(t, float64(1), meta["page"])
	assert.Equal(t, float64(30), meta["limit"])
	assert.Equal(t, float64(3), meta["total_pages"])
	assert.Equal(t, 1, svc.listPage)
	assert.Equal(t, 30, svc.listLimit)
}

func TestListMoviesNonNumericLimitAnswersDefaultWindow(t *testing.T) {
	svc := &fakeMovieService{movies: []models.Movie{{MovieID: "m1"}}, total: 1}
	app := newMovieTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/movies?limit=abc&page=xyz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	meta := listMeta(t, resp)
	assert.Equal(t, float64(30), meta["limit"])
}

func TestListMoviesOversizedLimitIsCapped(t *testing.T) {
	svc := &fakeMovieService{total: 0}
	app := newMovieTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/movies?limit=9999", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	meta := listMeta(t, resp)
	assert.Equal(t, float64(100), meta["limit"])
	assert.Equal(t, 100, svc.listLimit)
}
