package models

import "time"

// Rating is one user's score and review of one movie. The composite
// unique index is what makes submissions an upsert rather than an append.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_ratings_user_movie;not null" json:"user_id"`
	MovieID   string    `gorm:"uniqueIndex:idx_ratings_user_movie;index;not null" json:"movie_id"`
	Rating    int       `gorm:"not null" json:"rating" example:"8"`
	Review    string    `gorm:"size:500" json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Rating) TableName() string {
	return "ratings"
}

const (
	RatingMin = 1
	RatingMax = 10

	ReviewMaxLength = 500
)

// RatingStats is the per-movie aggregate. Zero ratings yields zeros, not
// an error.
type RatingStats struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int64   `json:"totalRatings"`
}

// UserRating is a rating joined with the movie it targets, for the
// profile page listing.
type UserRating struct {
	Rating
	Movie *Movie `json:"movie,omitempty"`
}

// ProfileOverview is the profile-page aggregate: the user's ratings plus
// neighbor recommendations derived from them.
type ProfileOverview struct {
	Ratings         []UserRating `json:"ratings"`
	Recommendations []Movie      `json:"recommendations"`
}
