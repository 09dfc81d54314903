package shadetex

import (
	"errors"
	"image"

	"github.com/disintegration/gift"
)

// Preview scales an image up by an integer factor with nearest neighbor
// resampling, so the 32x8 lookup texture can be inspected by eye without
// smearing the palette colors.
func Preview(img image.Image, scale int) (image.Image, error) {
	if scale < 1 {
		return nil, errors.New("shadetex: Preview: scale must be at least 1")
	}

	g := gift.New(gift.Resize(
		img.Bounds().Dx()*scale,
		img.Bounds().Dy()*scale,
		gift.NearestNeighborResampling,
	))

	output := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(output, img)

	return output, nil
}
