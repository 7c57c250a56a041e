//go:build !tinygo

package hal

import "sync"

// hostFramebuffer is double buffered: the app draws into the back buffer and
// Present copies it to the front buffer read by the window.
type hostFramebuffer struct {
	*monoFramebuffer

	mu     sync.Mutex
	front  []byte
	frames uint64
	mirror func(buf []byte) error
}

func newHostFramebuffer(width, height int, mirror func(buf []byte) error) *hostFramebuffer {
	f := &hostFramebuffer{mirror: mirror}
	f.monoFramebuffer = newMonoFramebuffer(width, height, f.flip)
	f.front = make([]byte, len(f.buf))
	return f
}

func (f *hostFramebuffer) flip(buf []byte) error {
	f.mu.Lock()
	copy(f.front, buf)
	f.frames++
	f.mu.Unlock()

	if f.mirror != nil {
		return f.mirror(buf)
	}
	return nil
}

// snapshot copies the last presented frame into dst and returns the number
// of frames presented so far.
func (f *hostFramebuffer) snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.frames
}
