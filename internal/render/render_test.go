package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/jmylchreest/identicon/internal/colour"
	"github.com/jmylchreest/identicon/internal/identicon"
)

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode png: %v", err)
	}
	return img
}

func TestPNGRendererRender(t *testing.T) {
	m := identicon.Generate("Chris")
	data, err := NewPNGRenderer(0).Render(m.RGB(), m.Rects())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	img := decode(t, data)
	if got := img.Bounds(); got != identicon.CanvasBounds() {
		t.Fatalf("bounds = %v, want %v", got, identicon.CanvasBounds())
	}

	fill := m.RGB()
	tests := []struct {
		name   string
		x, y   int
		filled bool
	}{
		{name: "cell 0", x: 25, y: 25, filled: true},
		{name: "cell 1", x: 75, y: 25, filled: false},
		{name: "cell 2 corner", x: 100, y: 0, filled: true},
		{name: "cell 12", x: 125, y: 125, filled: false},
		{name: "cell 24 corner", x: 249, y: 249, filled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, a := img.At(tt.x, tt.y).RGBA()
			if !tt.filled {
				if a != 0 {
					t.Errorf("pixel (%d,%d) should be transparent", tt.x, tt.y)
				}
				return
			}
			if got := colour.ToRGB(img.At(tt.x, tt.y)); got != fill || a != 0xffff {
				t.Errorf("pixel (%d,%d) = %v (alpha %d), want %v", tt.x, tt.y, got, a, fill)
			}
		})
	}
}

func TestPNGRendererBackgroundAndScale(t *testing.T) {
	white := colour.RGB{R: 255, G: 255, B: 255}
	r := &PNGRenderer{Size: 500, Background: &white}
	m := identicon.Generate("Chris")

	img, err := r.Draw(m.RGB(), m.Rects())
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if img.Bounds().Dx() != 500 || img.Bounds().Dy() != 500 {
		t.Fatalf("bounds = %v, want 500x500", img.Bounds())
	}
	if got := colour.ToRGB(img.At(99, 99)); got != m.RGB() {
		t.Errorf("scaled cell 0 pixel = %v, want %v", got, m.RGB())
	}
	if got := colour.ToRGB(img.At(150, 50)); got != white {
		t.Errorf("scaled cell 1 pixel = %v, want background", got)
	}
}

func TestPNGRendererErrors(t *testing.T) {
	fill := colour.RGB{R: 1}

	_, err := NewPNGRenderer(0).Render(fill, []image.Rectangle{image.Rect(200, 200, 300, 300)})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Render() error = %v, want ErrOutOfBounds", err)
	}

	for _, size := range []int{1, MaxSize + 1, -5} {
		if _, err := NewPNGRenderer(size).Render(fill, nil); err == nil {
			t.Errorf("Render() with size %d expected error", size)
		}
	}
}

func TestPNGRendererEmpty(t *testing.T) {
	data, err := NewPNGRenderer(0).Render(colour.RGB{}, nil)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	img := decode(t, data)
	if _, _, _, a := img.At(10, 10).RGBA(); a != 0 {
		t.Error("empty pixel map should give a transparent image")
	}
}

func TestBlocks(t *testing.T) {
	m := identicon.Generate("Chris")
	got := Blocks(m.RGB(), m.Rects(), false)
	want := strings.Join([]string{
		"##..##..##",
		"##......##",
		"####..####",
		"####..####",
		"####..####",
	}, "\n") + "\n"
	if got != want {
		t.Errorf("Blocks() =\n%s\nwant\n%s", got, want)
	}

	ansi := Blocks(m.RGB(), m.Rects(), true)
	if n := strings.Count(ansi, colour.ColourPreview(m.RGB(), 2)); n != 17 {
		t.Errorf("Blocks(ansi) has %d coloured cells, want 17", n)
	}
}
