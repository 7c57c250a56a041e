package hal

import "image/color"

// Colours used when a 1bpp surface is shown on an RGB screen.
var (
	PixelOn  = color.RGBA{R: 0x7F, G: 0xDB, B: 0xFF, A: 0xFF}
	PixelOff = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// lit reports whether c lights a monochrome pixel: anything brighter than mid-grey.
func lit(c color.RGBA) bool {
	lum := (uint32(c.R)*299 + uint32(c.G)*587 + uint32(c.B)*114) / 1000
	return lum >= 0x80
}
