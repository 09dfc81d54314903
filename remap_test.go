package shadetex

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemapKeepsPaletteColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, PaletteSize, 1))
	for i, col := range DefaultPalette {
		img.SetRGBA(i, 0, col)
	}

	output := Remap(img, DefaultPalette)
	for i, col := range DefaultPalette {
		require.Equal(t, col, output.RGBAAt(i, 0), "palette color %d must survive unchanged", i)
	}
}

func TestRemapSnapsToNearestColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	// Slightly off-white and slightly off-black.
	img.SetRGBA(0, 0, color.RGBA{0xfe, 0xf0, 0xe9, 0xff})
	img.SetRGBA(1, 0, color.RGBA{0x02, 0x01, 0x03, 0xff})

	output := Remap(img, DefaultPalette)
	require.Equal(t, DefaultPalette[7], output.RGBAAt(0, 0))
	require.Equal(t, DefaultPalette[0], output.RGBAAt(1, 0))
}

func TestRemapOutputStaysInPalette(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 16),
				G: uint8(y * 16),
				B: uint8((x + y) * 8),
				A: 0xff,
			})
		}
	}

	members := make(map[color.RGBA]bool, PaletteSize)
	for _, col := range DefaultPalette {
		members[col] = true
	}

	output := Remap(img, DefaultPalette)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.True(t, members[output.RGBAAt(x, y)],
				"pixel (%d, %d) = %v is not a palette color", x, y, output.RGBAAt(x, y))
		}
	}
}

func TestRemapSkipsTransparentPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	output := Remap(img, DefaultPalette)
	require.Equal(t, color.RGBA{}, output.RGBAAt(0, 0))
}
