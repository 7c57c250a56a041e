package hal

// OLED geometry of the SSD1306 panel the console is laid out for.
const (
	OLEDWidth  = 128
	OLEDHeight = 64
)

type monoFramebuffer struct {
	width   int
	height  int
	buf     []byte
	present func(buf []byte) error
}

// NewFramebuffer returns a 1bpp framebuffer of the given size.
//
// present is called with the whole buffer on every Present; nil makes Present a no-op.
func NewFramebuffer(width, height int, present func(buf []byte) error) Framebuffer {
	return newMonoFramebuffer(width, height, present)
}

func newMonoFramebuffer(width, height int, present func(buf []byte) error) *monoFramebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pages := (height + 7) / 8
	return &monoFramebuffer{
		width:   width,
		height:  height,
		buf:     make([]byte, width*pages),
		present: present,
	}
}

func (f *monoFramebuffer) Width() int     { return f.width }
func (f *monoFramebuffer) Height() int    { return f.height }
func (f *monoFramebuffer) Buffer() []byte { return f.buf }

func (f *monoFramebuffer) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *monoFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present(f.buf)
}

// pixelAt reports whether (x, y) is lit in a page-layout buffer of the given width.
func pixelAt(buf []byte, width, x, y int) bool {
	off := x + (y/8)*width
	if x < 0 || y < 0 || x >= width || off < 0 || off >= len(buf) {
		return false
	}
	return buf[off]&(1<<uint(y%8)) != 0
}

func setPixelAt(buf []byte, width, x, y int, on bool) {
	off := x + (y/8)*width
	if x < 0 || y < 0 || x >= width || off < 0 || off >= len(buf) {
		return
	}
	bit := byte(1) << uint(y%8)
	if on {
		buf[off] |= bit
	} else {
		buf[off] &^= bit
	}
}
