package services

import (
	"testing"

	"bollybuzz-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movie(movieID, title, director, cast string, rating models.OptionalFloat) models.Movie {
	return models.Movie{
		MovieID:  movieID,
		Title:    title,
		Director: director,
		Cast:     cast,
		Rating:   rating,
	}
}

func TestFuzzyPatternEscapesMetacharacters(t *testing.T) {
	pattern := FuzzyPattern("c++")
	assert.Equal(t, `c.*\+.*\+.*`, pattern)

	re, err := compileFuzzy("c++")
	require.NoError(t, err)
	assert.True(t, re.MatchString("C++ Ki Kahani"))
	assert.False(t, re.MatchString("cabaret"))
}

func TestFuzzyPatternMatchesSubsequence(t *testing.T) {
	re, err := compileFuzzy("shly")
	require.NoError(t, err)

	assert.True(t, re.MatchString("Sholay"))
	assert.True(t, re.MatchString("SHOLAY"))
	assert.False(t, re.MatchString("Deewaar"))
}

func TestRankMoviesScoreTiers(t *testing.T) {
	candidates := []models.Movie{
		movie("m1", "Sholay", "Ramesh Sippy", "Dharmendra", models.Float(8.1)),
		movie("m2", "Sholay Returns", "Someone Else", "Nobody", models.Float(6.0)),
		movie("m3", "Mr. Sholay Fan", "Someone Else", "Nobody", models.Float(7.0)),
		movie("m4", "Deewaar", "Sholay Kumar", "Nobody", models.Float(9.0)),
		movie("m5", "Zanjeer", "Prakash Mehra", "Sholay Singh", models.Float(9.5)),
		movie("m6", "Anand", "Hrishikesh Mukherjee", "Rajesh Khanna", models.Float(9.9)),
	}

	results, err := RankMovies(candidates, "Sholay", 10)
	require.NoError(t, err)

	// The non-matching movie is dropped regardless of its rating.
	require.Len(t, results, 5)

	order := make([]string, 0, len(results))
	for _, r := range results {
		order = append(order, r.MovieID)
	}
	assert.Equal(t, []string{"m1", "m2", "m3", "m4", "m5"}, order)

	// Exact title stacks exact + prefix + subsequence.
	assert.Equal(t, 18, results[0].RelevanceScore)
	// Prefix stacks prefix + subsequence.
	assert.Equal(t, 8, results[1].RelevanceScore)
	// Subsequence-only title.
	assert.Equal(t, 3, results[2].RelevanceScore)
	assert.Equal(t, 2, results[3].RelevanceScore)
	assert.Equal(t, 1, results[4].RelevanceScore)
}

func TestRankMoviesRatingBreaksTies(t *testing.T) {
	candidates := []models.Movie{
		movie("low", "Don", "A", "B", models.Float(6.2)),
		movie("high", "Don 2", "A", "B", models.Float(7.9)),
		movie("absent", "Don 3", "A", "B", models.OptionalFloat{}),
	}

	results, err := RankMovies(candidates, "don", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// "Don" is an exact match and wins outright; the other two tie on
	// score, and the absent rating sorts last.
	assert.Equal(t, "low", results[0].MovieID)
	assert.Equal(t, "high", results[1].MovieID)
	assert.Equal(t, "absent", results[2].MovieID)
}

func TestRankMoviesLimit(t *testing.T) {
	var candidates []models.Movie
	for i := 0; i < 15; i++ {
		candidates = append(candidates, movie(string(rune('a'+i)), "Don", "A", "B", models.Float(float64(i))))
	}

	results, err := RankMovies(candidates, "don", 10)
	require.NoError(t, err)
	assert.Len(t, results, 10)
}

func TestRankMoviesCaseInsensitive(t *testing.T) {
	candidates := []models.Movie{
		movie("m1", "SHOLAY", "X", "Y", models.Float(8.0)),
	}

	results, err := RankMovies(candidates, "sholay", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 18, results[0].RelevanceScore)
}
