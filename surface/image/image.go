// Package image encodes a surface.Image to the four output formats the
// render drivers support: PPM and PGM (written byte-for-byte against
// their plain-text spec), PNG (delegated to the standard library's
// encoder via an intermediate image.RGBA), and BMP (via x/image/bmp).
package image

import (
	"bufio"
	"fmt"
	stdimage "image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// RGBBuffer is the minimal shape surface.Image satisfies: a flat,
// row-major RGB byte buffer. Declared locally so this package does not
// import surface, keeping the dependency direction one-way.
type RGBBuffer interface {
	Dimensions() (width, height int)
	Pixels() []byte
}

// WritePPM writes buf as a binary (P6) PPM.
func WritePPM(w io.Writer, buf RGBBuffer) error {
	width, height := buf.Dimensions()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	if _, err := bw.Write(buf.Pixels()); err != nil {
		return err
	}
	return bw.Flush()
}

// WritePGM writes buf as a binary (P5) PGM, converting each RGB pixel to
// luminance via the Rec. 601 weighting.
func WritePGM(w io.Writer, buf RGBBuffer) error {
	width, height := buf.Dimensions()
	pix := buf.Pixels()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	gray := make([]byte, width*height)
	for i := range gray {
		r, g, b := pix[i*3], pix[i*3+1], pix[i*3+2]
		gray[i] = byte(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
	}
	if _, err := bw.Write(gray); err != nil {
		return err
	}
	return bw.Flush()
}

// WritePNG encodes buf as a PNG via the standard library encoder.
func WritePNG(w io.Writer, buf RGBBuffer) error {
	return png.Encode(w, toRGBA(buf))
}

// WriteBMP encodes buf as a BMP via golang.org/x/image/bmp.
func WriteBMP(w io.Writer, buf RGBBuffer) error {
	return bmp.Encode(w, toRGBA(buf))
}

func toRGBA(buf RGBBuffer) *stdimage.RGBA {
	width, height := buf.Dimensions()
	pix := buf.Pixels()

	img := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := (y*width + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: pix[off], G: pix[off+1], B: pix[off+2], A: 255})
		}
	}
	return img
}
