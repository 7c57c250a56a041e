package hal

import (
	"testing"
)

func TestSurfaceSetPixelPageLayout(t *testing.T) {
	fb := NewFramebuffer(OLEDWidth, OLEDHeight, nil)
	s := NewSurface(fb)

	s.SetPixel(3, 10, PixelOn)
	buf := fb.Buffer()
	// Row 10 lives in page 1, bit 2.
	if got := buf[3+1*OLEDWidth]; got != 1<<2 {
		t.Fatalf("page byte=%08b; want %08b", got, 1<<2)
	}
	if !s.Pixel(3, 10) {
		t.Fatal("expected (3,10) lit")
	}

	s.SetPixel(3, 10, PixelOff)
	if s.Pixel(3, 10) {
		t.Fatal("expected (3,10) cleared")
	}

	// Out of range writes are ignored.
	s.SetPixel(-1, 0, PixelOn)
	s.SetPixel(OLEDWidth, 0, PixelOn)
	s.SetPixel(0, OLEDHeight, PixelOn)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d]=%08b; want 0", i, b)
		}
	}
}

func TestSurfaceFillRectangleClips(t *testing.T) {
	fb := NewFramebuffer(16, 16, nil)
	s := NewSurface(fb)

	if err := s.FillRectangle(12, 12, 10, 10, PixelOn); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	lit := 0
	for y := int16(0); y < 16; y++ {
		for x := int16(0); x < 16; x++ {
			if s.Pixel(x, y) {
				lit++
			}
		}
	}
	if lit != 16 {
		t.Fatalf("lit=%d; want 16", lit)
	}
}

func TestSurfaceSetScrollAppliesOnDisplay(t *testing.T) {
	var presented []byte
	fb := NewFramebuffer(8, 16, func(buf []byte) error {
		presented = append(presented[:0], buf...)
		return nil
	})
	s := NewSurface(fb)
	s.SetPixel(0, 8, PixelOn)

	s.SetScroll(8)
	if err := s.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !pixelAt(presented, 8, 0, 0) {
		t.Fatal("expected buffer row 8 shown at screen row 0")
	}
	if !s.Pixel(0, 8) || s.Pixel(0, 0) {
		t.Fatal("Display must not modify the buffer")
	}

	s.Clear()
	if err := s.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	for i, b := range presented {
		if b != 0 {
			t.Fatalf("presented[%d]=%08b after Clear; want 0", i, b)
		}
	}
}

func TestLit(t *testing.T) {
	if !lit(PixelOn) {
		t.Fatal("PixelOn should be lit")
	}
	if lit(PixelOff) {
		t.Fatal("PixelOff should not be lit")
	}
}
