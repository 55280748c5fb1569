package image_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	surfimage "github.com/mirgo-labs/r3d/surface/image"
)

type fakeBuffer struct {
	w, h int
	pix  []byte
}

func (f fakeBuffer) Dimensions() (int, int) { return f.w, f.h }
func (f fakeBuffer) Pixels() []byte         { return f.pix }

func checkerboard(w, h int) fakeBuffer {
	pix := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * 3
			if (x+y)%2 == 0 {
				pix[off], pix[off+1], pix[off+2] = 255, 255, 255
			}
		}
	}
	return fakeBuffer{w: w, h: h, pix: pix}
}

func TestWritePPMHeaderAndSize(t *testing.T) {
	buf := checkerboard(4, 3)
	var out bytes.Buffer
	require.NoError(t, surfimage.WritePPM(&out, buf))

	want := "P6\n4 3\n255\n"
	require.Equal(t, want, out.String()[:len(want)])
	require.Equal(t, len(want)+len(buf.pix), out.Len())
}

func TestWritePGMHeaderAndSize(t *testing.T) {
	buf := checkerboard(4, 3)
	var out bytes.Buffer
	require.NoError(t, surfimage.WritePGM(&out, buf))

	want := "P5\n4 3\n255\n"
	require.Equal(t, want, out.String()[:len(want)])
	require.Equal(t, len(want)+buf.w*buf.h, out.Len())
}

func TestWritePNGProducesValidSignature(t *testing.T) {
	buf := checkerboard(8, 8)
	var out bytes.Buffer
	require.NoError(t, surfimage.WritePNG(&out, buf))

	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, out.Bytes()[:4])
}

func TestWriteBMPProducesValidSignature(t *testing.T) {
	buf := checkerboard(8, 8)
	var out bytes.Buffer
	require.NoError(t, surfimage.WriteBMP(&out, buf))

	require.Equal(t, []byte{'B', 'M'}, out.Bytes()[:2])
}
