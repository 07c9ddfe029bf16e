// Package image decodes garment photos into image.Image values for the
// colour extractor. Decoding failures surface as *DecodeError so callers can
// tell undecodable input apart from extraction problems.
package image

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"

	_ "golang.org/x/image/webp" // Register WebP format
)

// DecodeError reports input that could not be interpreted as an image. It is
// not retried; the caller decides what to do with the garment.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("failed to decode image (format: %s): %v", e.Format, e.Err)
	}
	return fmt.Sprintf("failed to decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode reads and decodes an image from r.
// Supported formats: JPEG, PNG, GIF, WebP.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	return img, nil
}

// FromBytes decodes an image held in memory.
func FromBytes(data []byte) (image.Image, error) {
	return Decode(bytes.NewReader(data))
}

// Load loads an image from a file path.
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}
