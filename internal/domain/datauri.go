package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	"image/png"
	"io"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP decoder.
	_ "golang.org/x/image/webp" // Register WebP decoder.
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

// DiffDataURIPrefix is prepended to every encoded diff image.
const DiffDataURIPrefix = "data:@file/png;base64,"

// DecodeDataURI decodes "<prefix>,<base64 bitmap>" into an image.
// The format is detected from the decoded bytes.
func DecodeDataURI(dataURI string) (image.Image, error) {
	_, payload, found := strings.Cut(dataURI, ",")
	if !found {
		return nil, fmt.Errorf("%w: missing ',' separator", m.ErrInvalidEncoding)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrInvalidEncoding, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrUnsupportedImage, err)
	}

	return img, nil
}

// EncodeDataURI serializes img as PNG behind DiffDataURIPrefix.
func EncodeDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		return "", err
	}

	return DiffDataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// WritePNG encodes img as PNG into w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	return nil
}
