// Package present shows rendered frames in an SDL2 window via a
// streaming texture.
package present

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"fds-renderer/internal/raster"
)

// Window owns the SDL window, renderer and the streaming texture the
// framebuffer is uploaded into each frame.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int
	height int
}

// NewWindow initialises SDL video and creates a window matching the
// framebuffer size.
func NewWindow(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("present: sdl init: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("present: window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("present: renderer: %w", err)
	}

	// ARGB8888 matches the packed framebuffer words on little-endian.
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("present: texture: %w", err)
	}

	return &Window{
		window:   window,
		renderer: renderer,
		texture:  texture,
		width:    width,
		height:   height,
	}, nil
}

// Present uploads the framebuffer and flips it to the screen.
func (w *Window) Present(fb *raster.FrameBuffer) error {
	pitch := fb.ColorStride * 4
	if err := w.texture.UpdateRGBA(nil, fb.Color, pitch); err != nil {
		return fmt.Errorf("present: upload: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("present: copy: %w", err)
	}
	w.renderer.Present()
	return nil
}

// ShouldClose drains pending events and reports whether the user asked
// to quit.
func (w *Window) ShouldClose() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE && ev.State == sdl.PRESSED {
				return true
			}
		}
	}
	return false
}

// Close tears down the SDL objects.
func (w *Window) Close() {
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
