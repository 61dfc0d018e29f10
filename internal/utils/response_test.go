package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePaginationMeta(t *testing.T) {
	meta := CreatePaginationMeta(2, 30, 90)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)
}

func TestCreatePaginationMetaEmptyTotal(t *testing.T) {
	meta := CreatePaginationMeta(1, 30, 0)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
}

func TestCreatePaginationMetaNormalizesWindow(t *testing.T) {
	// A zero or negative window must never be divided by.
	meta := CreatePaginationMeta(0, 0, 10)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 1, meta.Limit)
	assert.Equal(t, 10, meta.TotalPages)

	meta = CreatePaginationMeta(-1, -5, 0)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 1, meta.Limit)
}
