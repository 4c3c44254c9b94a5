// Package viewer implements the interactive display loop for a solved
// scene.
package viewer

import (
	"fmt"
	"log/slog"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/lumenbox/radiosity/internal/engine/camera"
	"github.com/lumenbox/radiosity/internal/engine/debug"
	"github.com/lumenbox/radiosity/internal/engine/input"
	"github.com/lumenbox/radiosity/internal/engine/renderer"
	"github.com/lumenbox/radiosity/internal/engine/window"
	"github.com/lumenbox/radiosity/internal/scene"
	vmath "github.com/lumenbox/radiosity/pkg/math"
)

const (
	fovY = 45 * gomath.Pi / 180
	near = 0.1
	far  = 100.0
)

// Config holds viewer configuration.
type Config struct {
	Title         string
	Width         int
	Height        int
	Fullscreen    bool
	VSync         bool
	ScreenshotDir string
}

// Viewer owns the window, renderer and camera for walking around the
// solved scene.
type Viewer struct {
	config   Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.FlyCamera
	capture  *debug.ScreenshotCapture
}

// New creates the viewer window and uploads the display geometry.
func New(cfg Config, s *scene.Scene, quads []scene.GouraudQuad, cam *camera.FlyCamera) (*Viewer, error) {
	slog.Info("initializing viewer",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
	)

	v := &Viewer{
		config:  cfg,
		camera:  cam,
		capture: debug.NewScreenshotCapture(cfg.ScreenshotDir, "radiosity"),
	}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.renderer.SetGeometry(s.Vertices, quads)

	v.input = input.New()
	v.window.SetRelativeMouseMode(true)

	slog.Info("viewer initialized")
	return v, nil
}

// Run starts the display loop. It returns when the user quits.
func (v *Viewer) Run() error {
	v.running = true
	lastTime := time.Now()

	// Capture the first frame, so a run always leaves an image behind
	// even if the user quits immediately.
	wantShot := true

	slog.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				v.renderer.Resize(event.Width, event.Height)
			case input.EventMouseMove:
				v.camera.HandleLook(float64(event.XRel), float64(event.YRel))
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					v.running = false
				case sdl.SCANCODE_C:
					wantShot = true
				}
			}
		}

		v.handleMovement(dt)
		v.render()

		// Read pixels before the swap, while the drawn frame is still
		// the back buffer.
		if wantShot {
			wantShot = false
			v.screenshot()
		}
		v.window.SwapBuffers()
	}

	return nil
}

// handleMovement applies held movement keys.
func (v *Viewer) handleMovement(dt float64) {
	keys := sdl.GetKeyboardState()

	var forward, right float64
	if keys[sdl.SCANCODE_W] != 0 {
		forward++
	}
	if keys[sdl.SCANCODE_S] != 0 {
		forward--
	}
	if keys[sdl.SCANCODE_D] != 0 {
		right++
	}
	if keys[sdl.SCANCODE_A] != 0 {
		right--
	}
	if forward != 0 || right != 0 {
		v.camera.HandleMovement(forward, right, dt)
	}
}

func (v *Viewer) render() {
	width, height := v.renderer.Size()
	proj := vmath.Perspective(fovY, float64(width)/float64(height), near, far)
	v.renderer.Draw(v.camera.ViewMatrix(), proj)
}

func (v *Viewer) screenshot() {
	width, height := v.renderer.Size()
	path, err := v.capture.CaptureFromPixels(v.renderer.ReadPixels(), width, height)
	if err != nil {
		slog.Error("screenshot failed", "error", err)
		return
	}
	slog.Info("screenshot saved", "path", path)
}

// RenderOnce draws a single frame into a hidden window and writes it
// out as a PNG. Used for headless runs.
func RenderOnce(cfg Config, s *scene.Scene, quads []scene.GouraudQuad, cam *camera.FlyCamera) (string, error) {
	win, err := window.New(window.Config{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Hidden: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	r, err := renderer.New(renderer.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Close()
	r.SetGeometry(s.Vertices, quads)

	proj := vmath.Perspective(fovY, float64(cfg.Width)/float64(cfg.Height), near, far)
	r.Draw(cam.ViewMatrix(), proj)

	capture := debug.NewScreenshotCapture(cfg.ScreenshotDir, "radiosity")
	return capture.CaptureFromPixels(r.ReadPixels(), cfg.Width, cfg.Height)
}

// Close releases the window and GL resources.
func (v *Viewer) Close() {
	slog.Info("closing viewer")
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
