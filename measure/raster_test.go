package measure

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/flanksource/symbols/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"><rect x="10" y="20" width="30" height="40" fill="black"/></svg>`

func TestRaster_ContentBounds(t *testing.T) {
	r := &Raster{Resolution: 100}
	box, err := r.ContentBounds(square, api.NewBox(0, 0, 100, 100))
	require.NoError(t, err)
	assertBox(t, api.NewBox(10, 20, 30, 40), box, 1.5)

	box, err = r.ContentBounds(`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"></svg>`, api.NewBox(0, 0, 100, 100))
	require.NoError(t, err)
	assert.True(t, box.Empty())

	_, err = r.ContentBounds(square, api.Box{})
	assert.Error(t, err)
}

func TestRaster_RenderPNG(t *testing.T) {
	r := NewRaster()
	var buf bytes.Buffer
	require.NoError(t, r.RenderPNG(&buf, square, api.NewBox(0, 0, 200, 100), 0, 0))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}
