package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateNormalizesPageParam(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		totalItems int64
		wantPage   int
	}{
		{"第一页", "1", 50, 1},
		{"中间页", "2", 50, 2},
		{"非整数回退到第一页", "abc", 50, 1},
		{"空参数回退到第一页", "", 50, 1},
		{"超出范围回退到最后一页", "999", 50, 3},
		{"零回退到最后一页", "0", 50, 3},
		{"负数回退到最后一页", "-3", 50, 3},
		{"无数据仍有一页", "5", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.raw, 20, tt.totalItems)
			assert.Equal(t, tt.wantPage, p.Number)
		})
	}
}

func TestPaginateComputesBounds(t *testing.T) {
	p := Paginate("2", 20, 50)

	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 20, p.Offset())
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 3, p.NextPage)
	assert.Equal(t, 1, p.PrevPage)
}

func TestPaginateSinglePage(t *testing.T) {
	p := Paginate("1", 20, 5)

	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
	assert.Equal(t, 0, p.Offset())
}
