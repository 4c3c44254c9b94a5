// Package main is the entry point for the radiosity demo.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lumenbox/radiosity/internal/config"
	"github.com/lumenbox/radiosity/internal/engine/camera"
	"github.com/lumenbox/radiosity/internal/logger"
	"github.com/lumenbox/radiosity/internal/scene"
	"github.com/lumenbox/radiosity/internal/solver"
	"github.com/lumenbox/radiosity/internal/transfer"
	"github.com/lumenbox/radiosity/internal/viewer"
	vmath "github.com/lumenbox/radiosity/pkg/math"
)

// The classic demo viewpoint: just outside the room, looking in
// through the culled near wall.
var eyePos = vmath.Vec3{X: 0, Y: 0, Z: -3}

// collisionMargin is how close the camera may get to a wall before a
// movement step is rejected.
const collisionMargin = 0.05

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Radiosity ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.WriteConfig() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("writing config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	if err := run(cfg); err != nil {
		logger.Error("fatal", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	s := scene.NewCubeDemo(cfg.Radiosity.Subdivision)
	logger.Info("scene built",
		zap.Int("subdivision", cfg.Radiosity.Subdivision),
		zap.Int("elements", len(s.Quads)),
	)

	transfers, err := calcTransfers(cfg, s)
	if err != nil {
		return err
	}

	res := solver.Solve(s, transfers, solver.Config{
		ConvergenceTarget: cfg.Radiosity.ConvergenceTarget,
		MaxIterations:     cfg.Radiosity.MaxIterations,
	})
	logger.Info("solve finished",
		zap.Int("iterations", res.Iterations),
		zap.Float64("total_light", res.TotalLight),
		zap.Bool("converged", res.Converged),
	)

	solver.ComputeSpecularity(s, eyePos, cfg.Radiosity.SpecularPower, cfg.Radiosity.SpecularFactor)
	solver.NormaliseBrightness(s, eyePos)

	viewCfg := viewer.Config{
		Title:         "Radiosity",
		Width:         cfg.Graphics.Width,
		Height:        cfg.Graphics.Height,
		Fullscreen:    cfg.Graphics.Fullscreen,
		VSync:         cfg.Graphics.VSync,
		ScreenshotDir: cfg.Output.ScreenshotDir,
	}
	var quads []scene.GouraudQuad
	if cfg.Graphics.FlatShading {
		quads = s.GenerateFlatQuads()
	} else {
		quads = s.GenerateGouraudQuads()
	}
	cam := camera.New(eyePos)
	cam.Blocked = func(p vmath.Vec3) bool {
		return s.Occupied(p, collisionMargin)
	}

	if config.Headless() {
		path, err := viewer.RenderOnce(viewCfg, s, quads, cam)
		if err != nil {
			return fmt.Errorf("headless render: %w", err)
		}
		logger.Info("headless frame written", zap.String("path", path))
		return nil
	}

	v, err := viewer.New(viewCfg, s, quads, cam)
	if err != nil {
		return fmt.Errorf("creating viewer: %w", err)
	}
	defer v.Close()

	return v.Run()
}

// calcTransfers runs the configured transfer calculator over the whole
// scene.
func calcTransfers(cfg *config.Config, s *scene.Scene) ([]float64, error) {
	start := time.Now()

	var transfers []float64
	switch cfg.Radiosity.Variant {
	case config.VariantHemicube:
		r, err := transfer.NewRender(s, cfg.Radiosity.Resolution)
		if err != nil {
			return nil, fmt.Errorf("creating hemicube calculator: %w", err)
		}
		defer r.Close()
		transfers = r.CalcAllLights()
	default:
		transfers = transfer.NewAnalytic(s).CalcAllLights()
	}

	logger.Info("transfers calculated",
		zap.String("variant", cfg.Radiosity.Variant),
		zap.Int("elements", len(s.Quads)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return transfers, nil
}
