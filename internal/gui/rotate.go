package gui

import "image"

// Rotate90 returns src turned a quarter turn, clockwise or counter-clockwise.
// The rotation lives only in memory; nothing is ever written back to disk.
func Rotate90(src image.Image, clockwise bool) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if clockwise {
				dst.Set(b.Max.Y-1-y, x-b.Min.X, src.At(x, y))
			} else {
				dst.Set(y-b.Min.Y, b.Max.X-1-x, src.At(x, y))
			}
		}
	}
	return dst
}
