package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "github.com/xfmoulet/qoi"
)

// pgmMagic starts every binary PGM file.
const pgmMagic = "P5\n"

// loadImage opens an image in any registered format (PNG, JPEG, GIF, QOI)
// and optionally downscales it to the given width, keeping the aspect
// ratio.  A width of 0 keeps the original size.
func loadImage(path string, width int) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	if width > 0 && width < img.Bounds().Dx() {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	return img, nil
}

// grayPGM converts img to 8-bit grayscale and returns it as a binary PGM:
// a short text header followed by one byte per pixel, row by row.
func grayPGM(img image.Image) []byte {
	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var buf bytes.Buffer
	buf.Grow(32 + w*h)
	fmt.Fprintf(&buf, "%s%d %d\n255\n", pgmMagic, w, h)
	for y := 0; y < h; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+4*w]
		for x := 0; x < w; x++ {
			// Grayscale sets R = G = B; any channel will do.
			buf.WriteByte(row[4*x])
		}
	}
	return buf.Bytes()
}

// isPGM reports whether data looks like the output of grayPGM.
func isPGM(data []byte) bool {
	return bytes.HasPrefix(data, []byte(pgmMagic))
}
