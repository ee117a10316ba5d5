// Package pgm exports a framebuffer in the plain PGM P2 ASCII format
// spec §6 documents for external tooling, and as a standard image.Image
// for on-screen blitting. PGM P2 has no ecosystem library behind it (it
// predates stb/png-style formats and almost nothing still writes it),
// so the writer here is a direct stdlib implementation rather than a
// dependency.
package pgm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/kirkNovitsky/gb-emulator/internal/ppu"
)

// WriteP2 writes fb as a PGM P2 (ASCII grayscale) image: the "P2"
// magic, width and height, max value 3, then one 2-bit shade index per
// pixel in row-major order, per spec §6's export format.
func WriteP2(w io.Writer, fb *ppu.Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P2\n%d %d\n3\n", ppu.ScreenWidth, ppu.ScreenHeight); err != nil {
		return err
	}
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			sep := " "
			if x == ppu.ScreenWidth-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(bw, "%d%s", fb[y][x]/0x55, sep); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ToGray converts fb into a standard library image.Gray, the bridge
// point for any further image/draw processing (scaling, format
// conversion) done outside this package.
func ToGray(fb *ppu.Framebuffer) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			img.SetGray(x, y, color.Gray{Y: fb[y][x]})
		}
	}
	return img
}
