package httpresp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/clientes-api/internal/httpresp"
)

func TestNewPage(t *testing.T) {
	p := httpresp.NewPage([]int{1, 2, 3, 4}, 0, 4, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 4, p.NumberOfElements)
	assert.True(t, p.First)
	assert.False(t, p.Last)
	assert.False(t, p.Empty)

	p = httpresp.NewPage([]int{9, 10}, 2, 4, 10)
	assert.True(t, p.Last)
	assert.False(t, p.First)
}

func TestNewPageOutOfRange(t *testing.T) {
	p := httpresp.NewPage[int](nil, 5, 4, 10)
	assert.NotNil(t, p.Content)
	assert.Empty(t, p.Content)
	assert.True(t, p.Empty)
	assert.True(t, p.Last)
}

func TestNewPageEmptyTable(t *testing.T) {
	p := httpresp.NewPage[int](nil, 0, 4, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.True(t, p.First)
	assert.True(t, p.Last)
	assert.True(t, p.Empty)
}

func TestNewPageMaxNumberIsLast(t *testing.T) {
	p := httpresp.NewPage[int](nil, math.MaxInt, 4, 10)
	assert.True(t, p.Last)
	assert.False(t, p.First)
	assert.Empty(t, p.Content)
}
