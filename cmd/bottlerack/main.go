// Package main is the entry point for the bottlerack still-life renderer.
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/mwheeler/bottlerack/internal/config"
	"github.com/mwheeler/bottlerack/internal/engine/mesh"
	"github.com/mwheeler/bottlerack/internal/engine/renderer"
	"github.com/mwheeler/bottlerack/internal/engine/resource"
	"github.com/mwheeler/bottlerack/internal/engine/scene"
	"github.com/mwheeler/bottlerack/internal/engine/scene/shaders"
	"github.com/mwheeler/bottlerack/internal/engine/shader"
	"github.com/mwheeler/bottlerack/internal/engine/window"
	"github.com/mwheeler/bottlerack/internal/logger"
)

// Fixed camera for the still life. The arrangement is static, so the view
// is too.
var (
	cameraEye    = mgl32.Vec3{0, 5, 14}
	cameraTarget = mgl32.Vec3{0, 3, 0}
	cameraUp     = mgl32.Vec3{0, 1, 0}
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== bottlerack ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("renderer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "Bottlerack",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	rend, err := renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	program, err := shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return fmt.Errorf("compiling scene shader: %w", err)
	}
	defer program.Delete()
	program.Use()

	registry := resource.NewRegistry(resource.FileLoader{}, resource.GLUploader{})
	meshes := mesh.NewMeshes()
	defer meshes.Destroy()

	still := scene.New(program, registry, meshes)
	defer still.Destroy()

	if err := still.Prepare(cfg.Assets.TextureDir); err != nil {
		return fmt.Errorf("preparing scene: %w", err)
	}

	applyCamera(program, cfg.Graphics.Width, cfg.Graphics.Height)

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE && e.Type == sdl.KEYDOWN {
					return nil
				}
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					w, h := win.GetSize()
					rend.Resize(w, h)
					applyCamera(program, w, h)
				}
			}
		}

		rend.Begin()
		program.Use()
		still.Render()
		win.SwapBuffers()
	}
}

// applyCamera uploads the fixed view and projection for the current
// framebuffer size.
func applyCamera(program *shader.Program, width, height int) {
	aspect := float32(width) / float32(height)
	view := mgl32.LookAtV(cameraEye, cameraTarget, cameraUp)
	proj := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)

	program.SetMat4("view", view)
	program.SetMat4("projection", proj)
	program.SetVec3("viewPosition", cameraEye)
}
