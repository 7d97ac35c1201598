package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClamps(t *testing.T) {
	p := &PaginationParams{Page: -2, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	p = &PaginationParams{Page: 3, PerPage: 0}
	p.Validate()
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, 30, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 10, 21)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = NewPagination(1, 10, 0)
	assert.Equal(t, 0, pg.TotalPages)
	assert.False(t, pg.HasNext)
}

func TestNewPaginatedResultNeverNil(t *testing.T) {
	res := NewPaginatedResult[int](nil, NewPagination(1, 15, 0))
	assert.NotNil(t, res.Items)
}
