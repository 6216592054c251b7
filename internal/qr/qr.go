// Package qr renders the QR codes stuck on boxes.
package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Size limits for generated images, in pixels.
const (
	DefaultSize = 256
	MinSize     = 128
	MaxSize     = 1024
)

// labelHeight is the height of the text strip added under a labelled code.
const labelHeight = 24

// ClampSize limits a requested image size to [MinSize, MaxSize]. Zero
// selects DefaultSize.
func ClampSize(size int) int {
	switch {
	case size == 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	}
	return size
}

// ScanURL returns the absolute URL encoded in a box's code.
func ScanURL(base, size string, num int64) string {
	return fmt.Sprintf("%s/scan/%s/%d", strings.TrimRight(base, "/"), url.PathEscape(size), num)
}

// Encode returns a PNG QR code for content.
func Encode(content string, size int) ([]byte, error) {
	data, err := qrcode.Encode(content, qrcode.Medium, ClampSize(size))
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	return data, nil
}

// EncodeLabeled returns a PNG QR code for content with text printed below it.
func EncodeLabeled(content, text string, size int) ([]byte, error) {
	code, err := Encode(content, size)
	if err != nil {
		return nil, err
	}
	return Label(code, text)
}

// Label adds a white strip with centred text under a PNG image.
func Label(pngData []byte, text string) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decoding qr image: %w", err)
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+labelHeight))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(0, 0, b.Dx(), b.Dy()), src, b.Min, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	x := (b.Dx() - width) / 2
	if x < 0 {
		x = 0
	}
	// Baseline sits so the glyphs are vertically centred in the strip.
	y := b.Dy() + (labelHeight+face.Ascent-face.Descent)/2
	d.Dot = fixed.P(x, y)
	d.DrawString(text)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encoding labelled image: %w", err)
	}
	return buf.Bytes(), nil
}
