package raster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image encoding.
type Format string

const (
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// ErrUnknownFormat is returned for formats other than webp and tga.
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat maps a case-insensitive name to a Format. Empty means WebP.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "webp":
		return FormatWebP, nil
	case "tga":
		return FormatTGA, nil
	}
	return "", fmt.Errorf("raster: %q: %w", s, ErrUnknownFormat)
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	if f == FormatTGA {
		return "image/x-tga"
	}
	return "image/webp"
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("raster: webp encode: %w", err)
		}
	case FormatTGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("raster: tga encode: %w", err)
		}
	default:
		return fmt.Errorf("raster: %q: %w", string(f), ErrUnknownFormat)
	}
	return nil
}
