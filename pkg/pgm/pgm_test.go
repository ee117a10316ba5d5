package pgm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kirkNovitsky/gb-emulator/internal/ppu"
)

func TestWriteP2Header(t *testing.T) {
	var fb ppu.Framebuffer
	var buf bytes.Buffer
	if err := WriteP2(&buf, &fb); err != nil {
		t.Fatalf("WriteP2: %v", err)
	}
	lines := strings.SplitN(buf.String(), "\n", 4)
	if lines[0] != "P2" {
		t.Errorf("magic = %q, want P2", lines[0])
	}
	if lines[1] != "160 144" {
		t.Errorf("dimensions = %q, want \"160 144\"", lines[1])
	}
	if lines[2] != "3" {
		t.Errorf("max value = %q, want 3", lines[2])
	}
}

func TestWriteP2DividesShadeIndex(t *testing.T) {
	var fb ppu.Framebuffer
	fb[0][0] = 0x00
	fb[0][1] = 0x55
	fb[0][2] = 0xAA
	fb[0][3] = 0xFF
	var buf bytes.Buffer
	if err := WriteP2(&buf, &fb); err != nil {
		t.Fatalf("WriteP2: %v", err)
	}
	lines := strings.SplitN(buf.String(), "\n", 4)
	row := strings.Fields(lines[3])
	want := []string{"0", "1", "2", "3"}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("sample %d = %q, want %q", i, row[i], w)
		}
	}
}

func TestToGrayPreservesShadeValues(t *testing.T) {
	var fb ppu.Framebuffer
	fb[10][20] = 0xAA
	img := ToGray(&fb)
	if got := img.GrayAt(20, 10).Y; got != 0xAA {
		t.Errorf("gray value = %#02x, want 0xAA", got)
	}
}

func TestToRGBAScaledDimensions(t *testing.T) {
	var fb ppu.Framebuffer
	img := ToRGBAScaled(&fb, 4)
	bounds := img.Bounds()
	if bounds.Dx() != ppu.ScreenWidth*4 || bounds.Dy() != ppu.ScreenHeight*4 {
		t.Errorf("scaled size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), ppu.ScreenWidth*4, ppu.ScreenHeight*4)
	}
}
