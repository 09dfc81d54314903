package main

import (
	"log"
	"os"

	"github.com/lovetron/shadetex"
)

func main() {
	log.SetFlags(0)

	img, err := shadetex.BuildTexture(shadetex.DefaultPalette, shadetex.DefaultShadowTable)
	if err != nil {
		log.Println("Failed to build texture:", err)
		os.Exit(1)
	}

	err = shadetex.WriteTexture(shadetex.DefaultOutputPath, img)
	if err != nil {
		log.Println("Failed to write texture:", err)
		os.Exit(1)
	}

	log.Println("Created palette shadow lookup texture:", shadetex.DefaultOutputPath)
	log.Printf("Size: %dx%d pixels\n", shadetex.PaletteSize, shadetex.ShadowLevels)
	log.Println("Each column represents a palette color (0-31)")
	log.Println("Each row represents a shadow level (0=brightest, 7=darkest)")
}
