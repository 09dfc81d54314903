package shadetex

import (
	"image"
	"image/png"
	"os"
)

// DefaultOutputPath is where the game expects the lookup texture.
const DefaultOutputPath = "assets/palette_shadow_lookup.png"

// WriteTexture encodes an image as PNG to the given path. The parent
// directory must already exist; the texture belongs inside the game's
// assets tree, so a missing directory is surfaced rather than created.
func WriteTexture(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
