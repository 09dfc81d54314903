package shadetex

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Remap converts an image to use only colors from the palette, replacing
// each pixel with the palette color nearest to it in Lab space. Pixels that
// already match a palette color exactly are kept as-is. Fully transparent
// pixels are left untouched.
func Remap(img image.Image, palette Palette) *image.RGBA {
	exact := make(map[color.RGBA]color.RGBA, PaletteSize)
	labs := make([]colorful.Color, PaletteSize)
	for i, col := range palette {
		exact[col] = col
		c, _ := colorful.MakeColor(col)
		labs[i] = c
	}

	// Source images tend to use few distinct colors, so cache each
	// resolved match.
	resolved := make(map[color.RGBA]color.RGBA)

	output := image.NewRGBA(img.Bounds())

	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			px := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if px.A == 0 {
				continue
			}

			if match, ok := exact[px]; ok {
				output.SetRGBA(x, y, match)
				continue
			}

			if match, ok := resolved[px]; ok {
				output.SetRGBA(x, y, match)
				continue
			}

			output.SetRGBA(x, y, nearestColor(px, palette, labs, resolved))
		}
	}

	return output
}

func nearestColor(px color.RGBA, palette Palette, labs []colorful.Color,
	resolved map[color.RGBA]color.RGBA) color.RGBA {
	target, ok := colorful.MakeColor(color.RGBA{px.R, px.G, px.B, 0xff})
	if !ok {
		return palette[0]
	}

	best := 0
	bestDist := target.DistanceLab(labs[0])
	for i := 1; i < PaletteSize; i++ {
		if d := target.DistanceLab(labs[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}

	resolved[px] = palette[best]
	return palette[best]
}
