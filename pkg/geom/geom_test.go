package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDist(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec
		want float64
	}{
		{"same point", Vec{X: 3, Y: 4}, Vec{X: 3, Y: 4}, 0},
		{"horizontal", Vec{X: 0, Y: 0}, Vec{X: 5, Y: 0}, 5},
		{"vertical", Vec{X: 0, Y: 0}, Vec{X: 0, Y: 7}, 7},
		{"pythagorean", Vec{X: 0, Y: 0}, Vec{X: 3, Y: 4}, 5},
		{"negative coords", Vec{X: -3, Y: -4}, Vec{X: 0, Y: 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Dist(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name string
		p    Vec
		want bool
	}{
		{"center", Vec{X: 60, Y: 45}, true},
		{"top-left corner", Vec{X: 10, Y: 20}, true},
		{"bottom-right corner", Vec{X: 110, Y: 70}, true},
		{"on left edge", Vec{X: 10, Y: 40}, true},
		{"just outside left", Vec{X: 9.99, Y: 40}, false},
		{"just outside bottom", Vec{X: 60, Y: 70.01}, false},
		{"far away", Vec{X: 500, Y: 500}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 40, Y: 40, W: 200, H: 120}
	assert.Equal(t, Vec{X: 140, Y: 100}, r.Center())
}
