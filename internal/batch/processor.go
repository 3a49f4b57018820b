package batch

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"fds-renderer/internal/mathutil"
	"fds-renderer/internal/postprocess"
	"fds-renderer/internal/raster"
	"fds-renderer/internal/scene"
	"fds-renderer/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Mesh *scene.Mesh
	Tex  *texture.Texture

	Width, Height int
	Frames        int
	Supersample   int
	ZScale        float32

	Kernel raster.KernelKind
	Interp raster.Interpolation
	Blend  raster.BlendMode

	OutputDir string
	Workers   int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Run renders all frames using a worker pool and writes them as WebP.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					slog.Info("progress", "frames", p, "total", total, "fps", float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// RenderFrame renders one frame of the spin animation into a fresh
// framebuffer, at the supersampled size when one is configured.
func RenderFrame(cfg Config, frame int) *raster.FrameBuffer {
	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	fb := raster.NewFrameBuffer(cfg.Width*ss, cfg.Height*ss)
	fb.Clear(0xFF10_1018)

	ctx := raster.NewContext(fb, cfg.ZScale)
	ctx.Kernel = cfg.Kernel
	ctx.Interp = cfg.Interp
	ctx.Blend = cfg.Blend

	angle := 2 * math.Pi * float64(frame) / float64(cfg.Frames)
	cam := scene.Camera{
		Rot:   mathutil.Mat3Mul(mathutil.RotX(mathutil.Deg2Rad(-20)), mathutil.RotY(angle)),
		Dist:  4.5,
		Focal: float64(fb.Height),
	}
	light := scene.Light{
		Dir:     mathutil.Vec3{0.4, -0.6, -0.7}.Normalize(),
		Ambient: 0.35,
		Diffuse: 0.65,
	}

	projected := scene.Project(cfg.Mesh, cam, light, fb.Width, fb.Height)

	face := raster.Face{Tex: cfg.Tex}
	for fi, verts := range projected {
		if verts == nil {
			continue
		}
		mip := scene.SelectMip(verts, cfg.Mesh.Faces[fi], cfg.Mesh.UVs, cfg.Tex.LSizeX, cfg.Tex.LSizeY, cfg.Tex.Levels())
		raster.TheOtherBarry(ctx, &face, verts, mip)
	}

	return fb
}

func processFrame(cfg Config, frame int) Result {
	fb := RenderFrame(cfg, frame)
	img := fb.ToNRGBA()
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%04d.webp", frame))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: frame, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: frame, Path: outPath, Success: true}
}
