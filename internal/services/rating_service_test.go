package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitValidatesBeforeStore(t *testing.T) {
	repo := newFakeRatingRepo()
	svc := NewRatingService(repo, testLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		movieID string
		rating  int
		review  string
	}{
		{"missing movie", "", 5, ""},
		{"rating below range", "tt0079221", 0, ""},
		{"rating above range", "tt0079221", 11, ""},
		{"review too long", "tt0079221", 5, strings.Repeat("x", 501)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, 1, tt.movieID, tt.rating, tt.review)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}

	assert.Zero(t, repo.upserts)
}

func TestSubmitOverwritesExistingRating(t *testing.T) {
	repo := newFakeRatingRepo()
	svc := NewRatingService(repo, testLogger())
	ctx := context.Background()

	first, err := svc.Submit(ctx, 1, "tt0079221", 7, "good")
	require.NoError(t, err)
	assert.Equal(t, 7, first.Rating)

	second, err := svc.Submit(ctx, 1, "tt0079221", 9, "great on rewatch")
	require.NoError(t, err)
	assert.Equal(t, 9, second.Rating)
	assert.Equal(t, "great on rewatch", second.Review)

	// Still one row per (user, movie).
	stats, err := svc.Stats(ctx, "tt0079221")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRatings)
	assert.Equal(t, 9.0, stats.AverageRating)
}

func TestSubmitBoundaryRatings(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), testLogger())
	ctx := context.Background()

	for _, rating := range []int{1, 10} {
		_, err := svc.Submit(ctx, 1, "tt0079221", rating, "")
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestSubmitReviewLengthCountsCharacters(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), testLogger())
	ctx := context.Background()

	// 500 Devanagari characters are three times as many bytes.
	_, err := svc.Submit(ctx, 1, "tt0079221", 8, strings.Repeat("श", 500))
	assert.NoError(t, err)

	_, err = svc.Submit(ctx, 1, "tt0079221", 8, strings.Repeat("श", 501))
	assert.True(t, IsValidation(err))
}

func TestStatsEmptyMovie(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), testLogger())

	stats, err := svc.Stats(context.Background(), "tt9999999")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalRatings)
	assert.Equal(t, 0.0, stats.AverageRating)
}

func TestStatsAveragesAcrossUsers(t *testing.T) {
	repo := newFakeRatingRepo()
	svc := NewRatingService(repo, testLogger())
	ctx := context.Background()

	_, err := svc.Submit(ctx, 1, "tt0079221", 6, "")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, 2, "tt0079221", 10, "")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "tt0079221")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalRatings)
	assert.Equal(t, 8.0, stats.AverageRating)
}

func TestRemoveMissingRatingIsNoError(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), testLogger())
	assert.NoError(t, svc.Remove(context.Background(), 1, "tt9999999"))
}

func TestGetUserRatingAbsent(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), testLogger())

	rating, err := svc.GetUserRating(context.Background(), 1, "tt0079221")
	require.NoError(t, err)
	assert.Nil(t, rating)
}

func TestReviewsEmptyMovie(t *testing.T) {
	svc := NewRatingService(newFakeRatingRepo(), testLogger())

	reviews, err := svc.Reviews(context.Background(), "tt9999999")
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
