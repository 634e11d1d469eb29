package measure

import (
	"testing"

	"github.com/flanksource/symbols/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBox(t *testing.T, want, got api.Box, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Width, got.Width, delta, "width")
	assert.InDelta(t, want.Height, got.Height, delta, "height")
}

func TestPathBounds(t *testing.T) {
	tests := []struct {
		name  string
		d     string
		want  api.Box
		delta float64
	}{
		{"lines", "M10 10 L20 30 L5 15 Z", api.NewBox(5, 10, 15, 20), 1e-9},
		{"relative", "m10,10 l10,0 0,10 h-20 v-5", api.NewBox(0, 10, 20, 10), 1e-9},
		{"implicit lineto", "M0 0 10 10 20 0", api.NewBox(0, 0, 20, 10), 1e-9},
		{"compact numbers", "M0-5L10.5.5", api.NewBox(0, -5, 10.5, 5.5), 1e-9},
		{"cubic extrema", "M0 0 C0 10 10 10 10 0", api.NewBox(0, 0, 10, 7.5), 1e-9},
		{"smooth cubic", "M0 0 C0 10 10 10 10 0 S20 -10 20 0", api.NewBox(0, -7.5, 20, 15), 1e-9},
		{"quadratic", "M0 0 Q5 10 10 0", api.NewBox(0, 0, 10, 5), 1e-9},
		{"smooth quadratic", "M0 0 Q5 10 10 0 T20 0", api.NewBox(0, -5, 20, 10), 1e-9},
		{"semicircle arc", "M0 0 A5 5 0 0 1 10 0", api.NewBox(0, -5, 10, 5), 0.1},
		{"compact arc flags", "M0 0a5 5 0 1010 0", api.NewBox(0, 0, 10, 5), 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, err := PathBounds(tt.d)
			require.NoError(t, err)
			assertBox(t, tt.want, box, tt.delta)
		})
	}
}

func TestPathBounds_Invalid(t *testing.T) {
	for _, d := range []string{"M0", "X1 2", "M0 0 A5 5 0 2 0 1 1", "L"} {
		_, err := PathBounds(d)
		assert.Error(t, err, d)
	}
}
