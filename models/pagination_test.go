package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationQueryNormalize(t *testing.T) {
	t.Run("defaults empty values", func(t *testing.T) {
		q := PaginationQuery{}
		q.Normalize()
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, 50, q.PageSize)
	})

	t.Run("clamps out of range values", func(t *testing.T) {
		q := PaginationQuery{Page: -3, PageSize: 5000}
		q.Normalize()
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, 50, q.PageSize)
	})

	t.Run("keeps valid values", func(t *testing.T) {
		q := PaginationQuery{Page: 4, PageSize: 25, Search: "vlada"}
		q.Normalize()
		assert.Equal(t, 4, q.Page)
		assert.Equal(t, 25, q.PageSize)
		assert.Equal(t, "vlada", q.Search)
	})
}

func TestNewPaginationResult(t *testing.T) {
	res := NewPaginationResult(123, 2, 50)
	assert.Equal(t, int64(123), res.Total)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 50, res.PageSize)
}
