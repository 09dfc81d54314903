package shadetex

import (
	"fmt"
	"image"
)

// InvalidIndexError reports a shadow table entry that falls outside the
// palette bounds.
type InvalidIndexError struct {
	PaletteIndex int
	ShadowLevel  int
	Value        int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("shadetex: shadow table entry [%d][%d] = %d is not a valid palette index",
		e.PaletteIndex, e.ShadowLevel, e.Value)
}

// BuildTexture renders the palette and shadow table into the 32x8 lookup
// texture consumed by the renderer. Column x holds the shading ramp of
// palette color x, with row y the substitute color at shadow level y.
//
// The table is validated up front so that a bad entry fails before any
// pixels are produced.
func BuildTexture(palette Palette, table ShadowTable) (*image.RGBA, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, PaletteSize, ShadowLevels))

	for p := 0; p < PaletteSize; p++ {
		for s := 0; s < ShadowLevels; s++ {
			img.SetRGBA(p, s, palette[table[p][s]])
		}
	}

	return img, nil
}
