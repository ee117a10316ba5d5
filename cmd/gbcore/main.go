package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/sqweek/dialog"

	"github.com/kirkNovitsky/gb-emulator/internal/gameboy"
	"github.com/kirkNovitsky/gb-emulator/internal/joypad"
	"github.com/kirkNovitsky/gb-emulator/internal/ppu"
	"github.com/kirkNovitsky/gb-emulator/pkg/debugserver"
	"github.com/kirkNovitsky/gb-emulator/pkg/diag"
	"github.com/kirkNovitsky/gb-emulator/pkg/log"
	"github.com/kirkNovitsky/gb-emulator/pkg/pgm"
)

const scale = 4

func main() {
	romFlag := flag.String("rom", "", "The rom file to load")
	debugFlag := flag.Bool("debug", false, "Log to stdout after each frame in which the LD B,B breakpoint opcode ran")
	debugAddr := flag.String("debug-addr", "", "If set, stream frames over websocket at this address")
	flag.Parse()

	romPath := *romFlag
	if romPath == "" {
		var err error
		romPath, err = dialog.File().Title("Select a Game Boy ROM").Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "no rom selected:", err)
			os.Exit(1)
		}
	}

	var opts []gameboy.Opt
	if *debugFlag {
		opts = append(opts, gameboy.Debug(), gameboy.WithLogger(log.New()))
	}
	gb, err := gameboy.Initialise(romPath, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load rom:", err)
		os.Exit(1)
	}

	var server *debugserver.Server
	if *debugAddr != "" {
		server = debugserver.New()
		go func() {
			if err := server.ListenAndServe(*debugAddr); err != nil {
				fmt.Fprintln(os.Stderr, "debug server:", err)
			}
		}()
	}

	// copyPanic is deferred on both the main goroutine and the emulation
	// goroutine below, so a panic raised inside Step is copied too.
	copyPanic := func() {
		if r := recover(); r != nil {
			if err := diag.CopyPanic(r, gb.CPU.PC); err != nil {
				fmt.Fprintln(os.Stderr, "diag: could not copy to clipboard:", err)
			}
			panic(r)
		}
	}
	defer copyPanic()

	a := app.New()
	w := a.NewWindow("gb-emulator")
	w.Resize(fyne.NewSize(ppu.ScreenWidth*scale, ppu.ScreenHeight*scale))

	raster := canvas.NewRasterFromImage(pgm.ToRGBAScaled(gb.ReadFramebuffer(), scale))
	raster.ScaleMode = canvas.ImageScalePixels
	w.SetContent(raster)

	// mu serialises every GameBoy call made from the key callback and at
	// shutdown against the ticker goroutine's Step.
	var mu sync.Mutex
	buttons := joypad.Buttons(0)
	w.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		switch e.Name {
		case fyne.KeyA:
			buttons |= joypad.ButtonA
		case fyne.KeyB:
			buttons |= joypad.ButtonB
		case fyne.KeyReturn:
			buttons |= joypad.ButtonStart
		case fyne.KeyBackspace:
			buttons |= joypad.ButtonSelect
		case fyne.KeyUp:
			buttons |= joypad.ButtonUp
		case fyne.KeyDown:
			buttons |= joypad.ButtonDown
		case fyne.KeyLeft:
			buttons |= joypad.ButtonLeft
		case fyne.KeyRight:
			buttons |= joypad.ButtonRight
		}
		mu.Lock()
		gb.SetInput(buttons)
		mu.Unlock()
	})

	go func() {
		defer copyPanic()
		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			gb.Step()
			raster.Image = pgm.ToRGBAScaled(gb.ReadFramebuffer(), scale)
			raster.Refresh()
			if server != nil {
				server.Broadcast(gb.ReadFramebuffer())
			}
			mu.Unlock()
		}
	}()

	w.ShowAndRun()

	mu.Lock()
	if err := gb.WriteSaveFile(romPath); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write save file:", err)
	}
}
