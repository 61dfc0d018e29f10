package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalFloatScan(t *testing.T) {
	tests := []struct {
		name  string
		src   interface{}
		want  float64
		valid bool
	}{
		{"numeric string", "8.1", 8.1, true},
		{"integer string", "8", 8, true},
		{"sentinel", "Not Available", 0, false},
		{"sentinel short", "N/A", 0, false},
		{"empty", "", 0, false},
		{"garbage", "eight-ish", 0, false},
		{"nil", nil, 0, false},
		{"bytes", []byte("7.4"), 7.4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o OptionalFloat
			require.NoError(t, o.Scan(tt.src))
			assert.Equal(t, tt.valid, o.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, o.Float64)
			}
		})
	}
}

func TestOptionalIntScanGroupedDigits(t *testing.T) {
	var o OptionalInt
	require.NoError(t, o.Scan("52,934"))
	assert.True(t, o.Valid)
	assert.Equal(t, int64(52934), o.Int64)

	require.NoError(t, o.Scan("Not Available"))
	assert.False(t, o.Valid)
}

func TestOptionalStringScan(t *testing.T) {
	var o OptionalString
	require.NoError(t, o.Scan("https://example.com/poster.jpg"))
	assert.True(t, o.Valid)
	assert.Equal(t, "https://example.com/poster.jpg", o.String)

	require.NoError(t, o.Scan("not available"))
	assert.False(t, o.Valid)
}

func TestOptionalValueKeepsSentinelOnWrite(t *testing.T) {
	v, err := OptionalFloat{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "Not Available", v)

	v, err = Float(8.1).Value()
	require.NoError(t, err)
	assert.Equal(t, "8.1", v)

	v, err = Int(52934).Value()
	require.NoError(t, err)
	assert.Equal(t, "52934", v)
}

func TestOptionalJSON(t *testing.T) {
	m := Movie{
		MovieID: "tt0079221",
		Title:   "Sholay",
		Rating:  Float(8.1),
		Votes:   OptionalInt{},
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 8.1, decoded["rating"])
	assert.Nil(t, decoded["votes"])
}

func TestMovieYearNumber(t *testing.T) {
	tests := []struct {
		year string
		want int
		ok   bool
	}{
		{"(1975)", 1975, true},
		{"1975", 1975, true},
		{"(2019– )", 2019, true},
		{"", 0, false},
		{"TBA", 0, false},
	}

	for _, tt := range tests {
		m := Movie{Year: tt.year}
		got, ok := m.YearNumber()
		assert.Equal(t, tt.ok, ok, "year %q", tt.year)
		if tt.ok {
			assert.Equal(t, tt.want, got, "year %q", tt.year)
		}
	}
}
