package main

import (
	"fmt"

	"fds-renderer/internal/batch"
	"fds-renderer/internal/config"
	"fds-renderer/internal/raster"
	"fds-renderer/internal/scene"
	"fds-renderer/internal/texture"
)

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(flags config.Flags) (config.Config, error) {
	var cfg config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return cfg, err
		}
	}
	cfg.Resolve(flags)
	return cfg, nil
}

// buildBatch resolves the mesh, texture and kernel selection into a batch
// config. Empty paths fall back to the built-in spinning cube over a
// checkerboard.
func buildBatch(cfg config.Config) (batch.Config, error) {
	var mesh *scene.Mesh
	if cfg.MeshPath != "" {
		var err error
		mesh, err = scene.LoadOBJ(cfg.MeshPath)
		if err != nil {
			return batch.Config{}, err
		}
	} else {
		mesh = scene.Cube()
	}

	var tex *texture.Texture
	if cfg.TexturePath != "" {
		var err error
		tex, err = texture.LoadFile(cfg.TexturePath)
		if err != nil {
			return batch.Config{}, err
		}
	} else {
		tex = texture.Checkerboard(6, 6, 0xFFE8E8E8, 0xFF905020)
	}

	bc := batch.Config{
		Mesh:        mesh,
		Tex:         tex,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Frames:      cfg.Frames,
		Supersample: cfg.Supersample,
		ZScale:      float32(cfg.ZScale),
		OutputDir:   cfg.OutputDir,
		Workers:     cfg.Workers,
	}

	switch cfg.Kernel {
	case "exact":
		bc.Kernel = raster.Exact
	case "approx":
		bc.Kernel = raster.Approximate
	default:
		return bc, fmt.Errorf("unknown kernel %q", cfg.Kernel)
	}
	switch cfg.Interp {
	case "quadratic":
		bc.Interp = raster.Quadratic
	case "affine":
		bc.Interp = raster.Affine
	default:
		return bc, fmt.Errorf("unknown interpolation %q", cfg.Interp)
	}
	switch cfg.Blend {
	case "overwrite":
		bc.Blend = raster.Overwrite
	case "xor":
		bc.Blend = raster.XOR
	default:
		return bc, fmt.Errorf("unknown blend %q", cfg.Blend)
	}

	return bc, nil
}
