package tools

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// MaxGradientPixels bounds width*height of a gradient image.
const MaxGradientPixels = 4096 * 4096

// RGB is a colour triple with channels in 0..255.
type RGB [3]int

// Gradient fills a width x height image with a left-to-right linear blend
// from start to end.
func Gradient(start, end RGB, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gradient size must be positive, got %dx%d", width, height)
	}
	if width > MaxGradientPixels || height > MaxGradientPixels || width*height > MaxGradientPixels {
		return nil, fmt.Errorf("gradient size %dx%d exceeds %d pixels", width, height, MaxGradientPixels)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		c := color.RGBA{
			R: blend(start[0], end[0], x, width),
			G: blend(start[1], end[1], x, width),
			B: blend(start[2], end[2], x, width),
			A: 0xff,
		}
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// GenerateColorGradient renders Gradient as PNG bytes.
func GenerateColorGradient(start, end RGB, width, height int) ([]byte, error) {
	img, err := Gradient(start, end, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode gradient: %w", err)
	}
	return buf.Bytes(), nil
}

func blend(from, to, x, width int) uint8 {
	v := int(float64(from) + float64(to-from)*float64(x)/float64(width))
	return uint8(clamp(v, 0, 255))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
