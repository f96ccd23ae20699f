package output

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"biomegen/pkg/grid"

	"golang.org/x/image/tiff"
)

// Format is an image encoding for exported height fields
type Format string

// Supported height map encodings
const (
	FormatPNG  Format = "png"
	FormatTIFF Format = "tiff"
)

// ErrEmptyField is returned when asked to export a grid without cells
var ErrEmptyField = errors.New("height field is empty")

// ParseFormat accepts a format name case-insensitively ("tif" is an alias)
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "png":
		return FormatPNG, nil
	case "tiff", "tif":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unknown height map format %q (supported: png, tiff)", name)
	}
}

// Ext returns the file extension including the dot
func (f Format) Ext() string {
	return "." + string(f)
}

// ToImage maps the field linearly onto the full 16-bit grey range, lowest
// cell black and highest white. A flat field becomes mid grey.
func ToImage(field *grid.Grid) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, field.W, field.H))
	lo, hi := field.MinMax()
	span := hi - lo

	for y := 0; y < field.H; y++ {
		for x := 0; x < field.W; x++ {
			level := uint16(math.MaxUint16/2 + 1)
			if span > 0 {
				level = uint16(math.Round((field.At(x, y) - lo) / span * math.MaxUint16))
			}
			img.SetGray16(x, y, color.Gray16{Y: level})
		}
	}
	return img
}

// WriteHeightmap encodes the field as a 16-bit greyscale image
func WriteHeightmap(w io.Writer, field *grid.Grid, format Format) error {
	if field == nil || field.Empty() {
		return ErrEmptyField
	}
	img := ToImage(field)

	switch format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("unknown height map format %q", format)
	}
}
