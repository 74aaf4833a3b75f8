package gui_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/wcmckee/SortPictures/internal/gui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// twoPixels is a 2x1 image: red on the left, blue on the right.
func twoPixels() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, blue)
	return img
}

func TestRotate90SwapsDimensions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))

	dst := gui.Rotate90(src, true)
	assert.Equal(t, 3, dst.Bounds().Dx())
	assert.Equal(t, 4, dst.Bounds().Dy())
}

func TestRotate90Clockwise(t *testing.T) {
	dst := gui.Rotate90(twoPixels(), true)

	// Red was top-left; a clockwise turn puts it top-right... of a 1x2
	// result, so the single column reads red above blue top to bottom.
	require.Equal(t, image.Rect(0, 0, 1, 2), dst.Bounds())
	assert.Equal(t, red, dst.NRGBAAt(0, 0))
	assert.Equal(t, blue, dst.NRGBAAt(0, 1))
}

func TestRotate90CounterClockwise(t *testing.T) {
	dst := gui.Rotate90(twoPixels(), false)

	require.Equal(t, image.Rect(0, 0, 1, 2), dst.Bounds())
	assert.Equal(t, blue, dst.NRGBAAt(0, 0))
	assert.Equal(t, red, dst.NRGBAAt(0, 1))
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	src := twoPixels()
	img := image.Image(src)
	for i := 0; i < 4; i++ {
		img = gui.Rotate90(img, true)
	}

	require.Equal(t, src.Bounds(), img.Bounds())
	got := img.(*image.NRGBA)
	assert.Equal(t, red, got.NRGBAAt(0, 0))
	assert.Equal(t, blue, got.NRGBAAt(1, 0))
}
