package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampSize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultSize},
		{-5, MinSize},
		{64, MinSize},
		{300, 300},
		{5000, MaxSize},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampSize(tt.in), "ClampSize(%d)", tt.in)
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode("http://example.com/scan/M/3", 256)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "expected PNG signature")

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := Encode("http://example.com/scan/S/1", 200)
	require.NoError(t, err)
	b, err := Encode("http://example.com/scan/S/1", 200)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncodeLabeled(t *testing.T) {
	data, err := EncodeLabeled("http://example.com/scan/M/3", "M 3", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256+labelHeight, img.Bounds().Dy())

	// Some pixel in the label strip must be dark.
	dark := false
	for x := 0; x < img.Bounds().Dx() && !dark; x++ {
		for y := 256; y < img.Bounds().Dy(); y++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r < 0x8000 {
				dark = true
				break
			}
		}
	}
	assert.True(t, dark, "expected label text to be drawn")
}

func TestLabelRejectsNonPNG(t *testing.T) {
	_, err := Label([]byte("not an image"), "x")
	assert.Error(t, err)
}

func TestScanURL(t *testing.T) {
	assert.Equal(t, "https://boxes.example.com/scan/M/3", ScanURL("https://boxes.example.com/", "M", 3))
	assert.Equal(t, "http://localhost:8080/scan/X%2FL/12", ScanURL("http://localhost:8080", "X/L", 12))
}
