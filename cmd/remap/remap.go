package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lovetron/shadetex"
	"golang.org/x/sync/errgroup"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

var (
	outputDir = flag.String("o", ".", "set directory for remapped images")
	suffix    = flag.String("s", "_pal", "set suffix appended to output file names")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	if flag.NArg() == 0 {
		log.Println("Usage: remap [options] input_image...")
		log.Println("")
		log.Println("Remap converts images (PNG, JPG or BMP) to the Picotron 32-color")
		log.Println("palette so they can be shaded with the palette shadow lookup texture.")
		log.Println("Each pixel is replaced with the nearest palette color in Lab space.")
		log.Println("Output is always PNG.")
		log.Println("")
		log.Println("Options:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	start := time.Now()

	var group errgroup.Group
	for _, path := range flag.Args() {
		path := path
		group.Go(func() error {
			return remapFile(path)
		})
	}

	if err := group.Wait(); err != nil {
		log.Println("Failed to remap:", err)
		os.Exit(1)
	}

	log.Println("Done! That took " + time.Since(start).String() + ".")
}

func remapFile(path string) error {
	input, err := os.Open(path)
	if err != nil {
		return err
	}
	defer input.Close()

	img, _, err := image.Decode(input)
	if err != nil {
		return err
	}

	output := shadetex.Remap(img, shadetex.DefaultPalette)

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + *suffix + ".png"
	outPath := filepath.Join(*outputDir, name)

	if err := shadetex.WriteTexture(outPath, output); err != nil {
		return err
	}

	log.Printf("%s -> %s\n", path, outPath)
	return nil
}
