// Package render turns an identicon pixel map into an encoded image.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/identicon/internal/colour"
	"github.com/jmylchreest/identicon/internal/identicon"
)

const (
	// MinSize is the smallest output size in pixels (one pixel per cell).
	MinSize = identicon.GridSide
	// MaxSize is the largest output size in pixels.
	MaxSize = 4096
)

// ErrOutOfBounds is returned when a rectangle does not fit on the canvas.
var ErrOutOfBounds = errors.New("rectangle outside canvas")

// Renderer draws filled rectangles and returns the encoded image.
type Renderer interface {
	Render(fill colour.RGB, rects []image.Rectangle) ([]byte, error)
}

// PNGRenderer draws onto a 250x250 canvas and encodes the result as PNG.
type PNGRenderer struct {
	// Size is the width and height of the encoded image. Zero means the
	// native canvas size. Other sizes are scaled with nearest-neighbour
	// sampling so cell edges stay sharp.
	Size int

	// Background fills the canvas before the cells are drawn. Nil leaves
	// the background transparent.
	Background *colour.RGB
}

// NewPNGRenderer creates a PNGRenderer producing images of the given size.
func NewPNGRenderer(size int) *PNGRenderer {
	return &PNGRenderer{Size: size}
}

// Render draws each rectangle filled with fill, in order, and encodes the
// canvas as PNG.
func (r *PNGRenderer) Render(fill colour.RGB, rects []image.Rectangle) ([]byte, error) {
	img, err := r.Draw(fill, rects)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Draw renders the rectangles without encoding.
func (r *PNGRenderer) Draw(fill colour.RGB, rects []image.Rectangle) (*image.NRGBA, error) {
	size := r.Size
	if size == 0 {
		size = identicon.CanvasSize
	}
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("invalid image size %d (must be %d-%d)", size, MinSize, MaxSize)
	}

	bounds := identicon.CanvasBounds()
	canvas := image.NewNRGBA(bounds)
	if r.Background != nil {
		draw.Draw(canvas, bounds, image.NewUniform(r.Background.NRGBA()), image.Point{}, draw.Src)
	}

	src := image.NewUniform(fill.NRGBA())
	for _, rect := range rects {
		if !rect.In(bounds) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, rect)
		}
		draw.Draw(canvas, rect, src, image.Point{}, draw.Src)
	}

	if size == identicon.CanvasSize {
		return canvas, nil
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, bounds, draw.Src, nil)
	return scaled, nil
}
