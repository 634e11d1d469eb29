package measure

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/flanksource/symbols/api"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DefaultViewport is the area a browser lays out for an <svg> without a size
var DefaultViewport = api.NewBox(0, 0, 300, 150)

// Raster renders documents with oksvg. It finds the painted extent of documents
// that carry no view box and produces PNG previews.
type Raster struct {
	// Resolution is the longest side of the rendered image in pixels
	Resolution int
}

func NewRaster() *Raster {
	return &Raster{Resolution: 512}
}

func (r *Raster) render(content string, viewport api.Box, width, height int) (*image.RGBA, error) {
	if !viewport.Valid() {
		return nil, fmt.Errorf("invalid viewport %s", viewport)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(content)), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}
	icon.ViewBox.X, icon.ViewBox.Y = viewport.X, viewport.Y
	icon.ViewBox.W, icon.ViewBox.H = viewport.Width, viewport.Height
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// size fits the viewport's aspect ratio into the configured resolution
func (r *Raster) size(viewport api.Box) (int, int) {
	res := r.Resolution
	if res <= 0 {
		res = 512
	}
	aspect := viewport.Width / viewport.Height
	if aspect >= 1 {
		return res, max(1, int(float64(res)/aspect))
	}
	return max(1, int(float64(res)*aspect)), res
}

// ContentBounds returns the painted area of content within viewport, in document
// units. Nothing painted gives an empty box.
func (r *Raster) ContentBounds(content string, viewport api.Box) (api.Box, error) {
	w, h := r.size(viewport)
	img, err := r.render(content, viewport, w, h)
	if err != nil {
		return api.Box{}, err
	}

	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return api.Box{}, nil
	}
	sx, sy := viewport.Width/float64(w), viewport.Height/float64(h)
	return api.NewBox(
		viewport.X+float64(minX)*sx,
		viewport.Y+float64(minY)*sy,
		float64(maxX-minX+1)*sx,
		float64(maxY-minY+1)*sy,
	), nil
}

// RenderPNG writes content's viewport as a PNG of the given pixel size
func (r *Raster) RenderPNG(w io.Writer, content string, viewport api.Box, width, height int) error {
	if width <= 0 || height <= 0 {
		width, height = r.size(viewport)
	}
	img, err := r.render(content, viewport, width, height)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
