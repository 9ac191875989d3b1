// Package image provides utilities for loading and comparing stored identicons.
package image

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG format
	"os"
)

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
func (l *FileLoader) Load(path string) (image.Image, error) {
	// Validate path.
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	// Check if file exists.
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}

	// Check if it's a directory.
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// SquareSize returns the side length of img, or an error if img is not square.
func SquareSize(img image.Image) (int, error) {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return 0, fmt.Errorf("image is not square: %dx%d", b.Dx(), b.Dy())
	}
	return b.Dx(), nil
}

// Diff counts the pixels that differ between a and b after converting both to
// non-premultiplied RGBA. Fully transparent pixels compare equal regardless of
// their colour channels. Images with different sizes differ everywhere.
func Diff(a, b image.Image) int {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return max(ab.Dx()*ab.Dy(), bb.Dx()*bb.Dy())
	}

	diff := 0
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			pa := color.NRGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y)).(color.NRGBA)
			pb := color.NRGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y)).(color.NRGBA)
			if pa.A == 0 && pb.A == 0 {
				continue
			}
			if pa != pb {
				diff++
			}
		}
	}
	return diff
}
