package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		in         PageQuery
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"zero values", PageQuery{}, 1, DefaultPageSize, 0},
		{"negative", PageQuery{Page: -3, Limit: -1}, 1, DefaultPageSize, 0},
		{"limit capped", PageQuery{Page: 2, Limit: 500}, 2, MaxPageSize, MaxPageSize},
		{"page capped", PageQuery{Page: math.MaxInt, Limit: MaxPageSize}, MaxPage, MaxPageSize, (MaxPage - 1) * MaxPageSize},
		{"regular", PageQuery{Page: 3, Limit: 10}, 3, 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Normalize()
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
			assert.Equal(t, tt.wantOffset, q.Offset())
		})
	}
}
