package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmerican(t *testing.T) {
	tests := []struct {
		prob float64
		want int
	}{
		{0.5, -100},
		{0.75, -300},
		{0.25, 300},
		{0.6, -150},
		{0.4, 150},
		{0.0, 99999},
		{1.0, -99999},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, American(tt.prob), "prob %v", tt.prob)
	}
}

func TestAmerican_FavoriteAlwaysNegative(t *testing.T) {
	for p := 0.5; p < 1.0; p += 0.05 {
		assert.Negative(t, American(p), "prob %v", p)
	}
	for p := 0.05; p < 0.5; p += 0.05 {
		assert.Positive(t, American(p), "prob %v", p)
	}
}
