package pgm

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/kirkNovitsky/gb-emulator/internal/ppu"
)

// ToRGBAScaled converts fb to image.RGBA at the given pixel scale,
// using nearest-neighbor scaling so Game Boy pixels stay crisp blocks
// rather than blurred, matching the reference frontend's blit.
func ToRGBAScaled(fb *ppu.Framebuffer, scale int) *image.RGBA {
	src := ToGray(fb)
	dst := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth*scale, ppu.ScreenHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
