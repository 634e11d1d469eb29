package editor

import (
	"fmt"
	"time"
)

// Settings tune the editor's viewport and tooltip layout.
type Settings struct {
	MinZoom float64 `json:"minZoom" yaml:"minZoom" toml:"minZoom"`
	MaxZoom float64 `json:"maxZoom" yaml:"maxZoom" toml:"maxZoom"`
	// ZoomFactor and ZoomExponent give the zoom step: zoom·(1+factor)^exponent
	ZoomFactor   float64 `json:"zoomFactor" yaml:"zoomFactor" toml:"zoomFactor"`
	ZoomExponent float64 `json:"zoomExponent" yaml:"zoomExponent" toml:"zoomExponent"`
	// AnimationMillis is the length of a zoom animation, 0 zooms instantly
	AnimationMillis int `json:"animationMillis" yaml:"animationMillis" toml:"animationMillis"`

	// TooltipWidth and TooltipHeight are the footprint of a tag tooltip in
	// container pixels, used to find overlapping tooltips
	TooltipWidth  float64 `json:"tooltipWidth" yaml:"tooltipWidth" toml:"tooltipWidth"`
	TooltipHeight float64 `json:"tooltipHeight" yaml:"tooltipHeight" toml:"tooltipHeight"`
	// HighlightPadding surrounds group highlight rectangles, in container pixels
	HighlightPadding float64 `json:"highlightPadding" yaml:"highlightPadding" toml:"highlightPadding"`

	ContainerWidth  float64 `json:"containerWidth" yaml:"containerWidth" toml:"containerWidth"`
	ContainerHeight float64 `json:"containerHeight" yaml:"containerHeight" toml:"containerHeight"`
}

func DefaultSettings() Settings {
	return Settings{
		MinZoom:          0.75,
		MaxZoom:          4,
		ZoomFactor:       0.34,
		ZoomExponent:     1.2,
		AnimationMillis:  300,
		TooltipWidth:     100,
		TooltipHeight:    36,
		HighlightPadding: 4,
		ContainerWidth:   800,
		ContainerHeight:  600,
	}
}

func (s Settings) AnimationDuration() time.Duration {
	return time.Duration(s.AnimationMillis) * time.Millisecond
}

func (s Settings) Validate() error {
	if s.MinZoom <= 0 || s.MaxZoom < s.MinZoom {
		return fmt.Errorf("invalid zoom range [%g, %g]", s.MinZoom, s.MaxZoom)
	}
	if s.ZoomFactor <= 0 || s.ZoomExponent <= 0 {
		return fmt.Errorf("zoom factor and exponent must be positive")
	}
	if s.AnimationMillis < 0 {
		return fmt.Errorf("animation length must not be negative")
	}
	if s.TooltipWidth <= 0 || s.TooltipHeight <= 0 {
		return fmt.Errorf("invalid tooltip size %gx%g", s.TooltipWidth, s.TooltipHeight)
	}
	if s.ContainerWidth < 0 || s.ContainerHeight < 0 {
		return fmt.Errorf("invalid container size %gx%g", s.ContainerWidth, s.ContainerHeight)
	}
	return nil
}
