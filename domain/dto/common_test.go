package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageResponse(t *testing.T) {
	sort := PageSort{Property: "dueDate", Direction: "ASC", Sorted: true}

	first := NewPageResponse([]int{1, 2, 3}, 0, 3, 7, sort)
	assert.Equal(t, 3, first.TotalPages)
	assert.True(t, first.First)
	assert.False(t, first.Last)
	assert.Equal(t, 3, first.NumberOfElements)

	last := NewPageResponse([]int{7}, 2, 3, 7, sort)
	assert.True(t, last.Last)
	assert.False(t, last.First)

	empty := NewPageResponse[int](nil, 4, 3, 7, sort)
	assert.NotNil(t, empty.Content)
	assert.True(t, empty.Empty)
	assert.True(t, empty.Last)
}
