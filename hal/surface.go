package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Surface draws into a 1bpp Framebuffer.
//
// It satisfies drivers.Displayer for tinyfont and the FillRectangle/SetScroll
// extension used by tinyterm.
type Surface struct {
	fb      Framebuffer
	scroll  int
	scratch []byte
}

var _ drivers.Displayer = (*Surface)(nil)

func NewSurface(fb Framebuffer) *Surface {
	return &Surface{fb: fb}
}

func (s *Surface) Size() (x, y int16) {
	if s.fb == nil {
		return 0, 0
	}
	return int16(s.fb.Width()), int16(s.fb.Height())
}

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	if s.fb == nil {
		return
	}
	setPixelAt(s.fb.Buffer(), s.fb.Width(), int(x), int(y), lit(c))
}

// Pixel reports whether (x, y) is lit.
func (s *Surface) Pixel(x, y int16) bool {
	if s.fb == nil {
		return false
	}
	return pixelAt(s.fb.Buffer(), s.fb.Width(), int(x), int(y))
}

// Display presents the framebuffer. A non-zero scroll offset is applied the
// way the SSD1306 display start line does: row 0 on screen shows buffer row
// scroll. The buffer itself is left untouched.
func (s *Surface) Display() error {
	if s.fb == nil {
		return nil
	}
	h := s.fb.Height()
	if s.scroll == 0 || h <= 0 {
		return s.fb.Present()
	}

	buf := s.fb.Buffer()
	w := s.fb.Width()
	if cap(s.scratch) < len(buf) {
		s.scratch = make([]byte, len(buf))
	}
	orig := s.scratch[:len(buf)]
	copy(orig, buf)

	for y := 0; y < h; y++ {
		src := (y + s.scroll) % h
		for x := 0; x < w; x++ {
			setPixelAt(buf, w, x, y, pixelAt(orig, w, x, src))
		}
	}
	err := s.fb.Present()
	copy(buf, orig)
	return err
}

func (s *Surface) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if s.fb == nil {
		return nil
	}
	buf := s.fb.Buffer()
	w := s.fb.Width()
	h := s.fb.Height()

	x0, y0 := clampInt(int(x), w), clampInt(int(y), h)
	x1, y1 := clampInt(int(x)+int(width), w), clampInt(int(y)+int(height), h)
	on := lit(c)
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			setPixelAt(buf, w, xx, yy, on)
		}
	}
	return nil
}

// SetScroll sets the display start line used by Display.
func (s *Surface) SetScroll(line int16) {
	h := 0
	if s.fb != nil {
		h = s.fb.Height()
	}
	if h <= 0 {
		s.scroll = 0
		return
	}
	v := int(line) % h
	if v < 0 {
		v += h
	}
	s.scroll = v
}

// SetRotation is accepted for drivers compatibility; the surface is never rotated.
func (s *Surface) SetRotation(drivers.Rotation) error { return nil }

// Clear blanks the buffer and resets the scroll offset. It does not present.
func (s *Surface) Clear() {
	s.scroll = 0
	if s.fb != nil {
		s.fb.Clear()
	}
}

func clampInt(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
