package services

import (
	"regexp"
	"sort"
	"strings"

	"bollybuzz-backend/internal/models"
)

// Relevance weights for fuzzy search. Exact title always outranks a
// prefix, which outranks a title subsequence, then director, then cast.
const (
	scoreTitleExact       = 10
	scoreTitlePrefix      = 5
	scoreTitleSubsequence = 3
	scoreDirector         = 2
	scoreCast             = 1
)

// SearchResult is one ranked hit; the score is exposed so clients can
// debug why a result ranked where it did.
type SearchResult struct {
	models.Movie
	RelevanceScore int `json:"relevanceScore"`
}

// FuzzyPattern builds the subsequence pattern: every character of the
// query, in order, with anything in between. Metacharacters are escaped
// first, so "C++" matches only a literal C followed by two pluses.
func FuzzyPattern(query string) string {
	var b strings.Builder
	for _, r := range query {
		b.WriteString(regexp.QuoteMeta(string(r)))
		b.WriteString(".*")
	}
	return b.String()
}

func compileFuzzy(query string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + FuzzyPattern(query))
}

func relevanceScore(m *models.Movie, query string, fuzzy *regexp.Regexp) int {
	score := 0
	lowerTitle := strings.ToLower(m.Title)
	lowerQuery := strings.ToLower(query)

	if lowerTitle == lowerQuery {
		score += scoreTitleExact
	}
	if strings.HasPrefix(lowerTitle, lowerQuery) {
		score += scoreTitlePrefix
	}
	if fuzzy.MatchString(m.Title) {
		score += scoreTitleSubsequence
	}
	if fuzzy.MatchString(m.Director) {
		score += scoreDirector
	}
	if fuzzy.MatchString(m.Cast) {
		score += scoreCast
	}
	return score
}

// RankMovies scores candidates against the query and orders them by
// relevance, breaking ties by rating with absent ratings last. Movies
// that match none of the fields are dropped.
func RankMovies(candidates []models.Movie, query string, limit int) ([]SearchResult, error) {
	fuzzy, err := compileFuzzy(query)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(candidates))
	for i := range candidates {
		score := relevanceScore(&candidates[i], query, fuzzy)
		if score == 0 {
			continue
		}
		results = append(results, SearchResult{Movie: candidates[i], RelevanceScore: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		return ratingGreater(results[i].Rating, results[j].Rating)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func ratingGreater(a, b models.OptionalFloat) bool {
	if a.Valid != b.Valid {
		return a.Valid
	}
	return a.Float64 > b.Float64
}
