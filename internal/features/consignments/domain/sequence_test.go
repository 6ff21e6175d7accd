package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloor(t *testing.T) {
	tests := []struct {
		name   string
		base   int64
		maxima []int64
		want   int64
	}{
		{name: "BaseOnly", base: 1000000, want: 1000000},
		{name: "LegacyAboveBase", base: 1, maxima: []int64{5, 9, 7}, want: 9},
		{name: "BaseAboveLegacy", base: 1000000, maxima: []int64{5, 9, 7}, want: 1000000},
		{name: "EmptyCollections", base: 10, maxima: []int64{0, 0}, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Floor(tt.base, tt.maxima...))
		})
	}
}
