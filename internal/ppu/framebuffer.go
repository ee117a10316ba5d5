package ppu

// ScreenWidth and ScreenHeight are the fixed dimensions of the display,
// in pixels.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// Framebuffer is one rendered frame: one grayscale byte per pixel, row
// major, produced by resolvePalette.
type Framebuffer [ScreenHeight][ScreenWidth]uint8

// Bytes flattens the framebuffer into a single row-major slice, the
// form pkg/pgm and the reference frontend consume.
func (f *Framebuffer) Bytes() []byte {
	out := make([]byte, ScreenWidth*ScreenHeight)
	for y := 0; y < ScreenHeight; y++ {
		copy(out[y*ScreenWidth:(y+1)*ScreenWidth], f[y][:])
	}
	return out
}
