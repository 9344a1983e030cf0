package domain

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

// CompareImages computes a per-pixel difference of two equally sized images.
//
// Pixels inside any ignore rectangle render opaque white and carry no signal.
// Every other pixel adds, per RGBA channel, max(a,b) to the denominator and
// |a-b| to the numerator, and renders 255-|a-b|. The score is the numerator as
// a percentage of the denominator; it is 0 when the denominator is 0.
func CompareImages(a, b image.Image, ignore []m.Rectangle) (float64, *image.NRGBA, error) {
	boundsA := a.Bounds()
	boundsB := b.Bounds()

	if boundsA.Dx() != boundsB.Dx() || boundsA.Dy() != boundsB.Dy() {
		return 0, nil, fmt.Errorf("%w: %dx%d vs %dx%d", m.ErrDimensionMismatch,
			boundsA.Dx(), boundsA.Dy(), boundsB.Dx(), boundsB.Dy())
	}

	width, height := boundsA.Dx(), boundsA.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, width, height))

	var numerator, denominator uint64

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			offset := out.PixOffset(x, y)
			pixel := out.Pix[offset : offset+4 : offset+4]

			if ignored(ignore, x, y) {
				pixel[0], pixel[1], pixel[2], pixel[3] = 0xff, 0xff, 0xff, 0xff
				continue
			}

			pa := nrgbaAt(a, boundsA.Min.X+x, boundsA.Min.Y+y)
			pb := nrgbaAt(b, boundsB.Min.X+x, boundsB.Min.Y+y)

			for i, pair := range [4][2]uint8{{pa.R, pb.R}, {pa.G, pb.G}, {pa.B, pb.B}, {pa.A, pb.A}} {
				hi, lo := maxMin(pair[0], pair[1])
				diff := hi - lo

				denominator += uint64(hi)
				numerator += uint64(diff)
				pixel[i] = 0xff - diff
			}
		}
	}

	score, err := changeScore(numerator, denominator)
	if errors.Is(err, m.ErrDegenerateScore) {
		slog.Debug("No pixel signal to compare, treating as unchanged", "width", width, "height", height, "ignoreAreas", len(ignore))
	}

	return score, out, nil
}

// CompareEncoded compares two data URI images and returns the change flag with
// the diff image encoded as a data URI.
func CompareEncoded(leftURI, rightURI string, ignore []m.Rectangle) (m.StepComparison, error) {
	left, err := DecodeDataURI(leftURI)
	if err != nil {
		return m.StepComparison{}, fmt.Errorf("decode left image: %w", err)
	}

	right, err := DecodeDataURI(rightURI)
	if err != nil {
		return m.StepComparison{}, fmt.Errorf("decode right image: %w", err)
	}

	return compareDecoded(left, right, ignore)
}

func compareDecoded(left, right image.Image, ignore []m.Rectangle) (m.StepComparison, error) {
	score, diffImage, err := CompareImages(left, right, ignore)
	if err != nil {
		return m.StepComparison{}, err
	}

	diffURI, err := EncodeDataURI(diffImage)
	if err != nil {
		return m.StepComparison{}, err
	}

	return m.StepComparison{
		ContainsChanges: score > 0,
		Score:           score,
		DiffDataURI:     diffURI,
	}, nil
}

func changeScore(numerator, denominator uint64) (float64, error) {
	if denominator == 0 {
		return 0, m.ErrDegenerateScore
	}

	return float64(numerator) * 100.0 / float64(denominator), nil
}

func ignored(areas []m.Rectangle, x, y int) bool {
	for _, area := range areas {
		if area.Contains(x, y) {
			return true
		}
	}

	return false
}

// nrgbaAt reads a pixel as 8-bit non-premultiplied RGBA.
func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba.NRGBAAt(x, y)
	}

	c, _ := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)

	return c
}

func maxMin(a, b uint8) (uint8, uint8) {
	if a > b {
		return a, b
	}

	return b, a
}
