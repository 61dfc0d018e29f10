package models

import (
	"strconv"
	"strings"
	"unicode"
)

// Movie is a row of the externally seeded catalog. The application never
// writes this table; numeric-looking columns are text in the source data
// and are decoded through the Optional types.
type Movie struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	MovieID   string         `gorm:"uniqueIndex;not null" json:"movie_id" example:"tt0079221"`
	Title     string         `gorm:"not null;index" json:"title" example:"Sholay"`
	Year      string         `gorm:"index" json:"year" example:"(1975)"`
	Genre     string         `json:"genre" example:"Action, Adventure, Comedy"`
	Cast      string         `gorm:"column:cast_members" json:"cast" example:"Dharmendra, Amitabh Bachchan"`
	Director  string         `json:"director" example:"Ramesh Sippy"`
	Rating    OptionalFloat  `gorm:"type:text" json:"rating" example:"8.1"`
	Votes     OptionalInt    `gorm:"type:text" json:"votes" example:"52934"`
	PosterURL OptionalString `gorm:"type:text" json:"poster_url"`
	Overview  string         `gorm:"type:text" json:"overview"`
}

func (Movie) TableName() string {
	return "movies"
}

// YearNumber strips the non-digit noise the dataset carries ("(1975)",
// "1975– ") and reports whether anything numeric was left.
func (m *Movie) YearNumber() (int, bool) {
	var b strings.Builder
	for _, r := range m.Year {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *Movie) GenreList() []string {
	return splitList(m.Genre)
}

func (m *Movie) CastList() []string {
	return splitList(m.Cast)
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
