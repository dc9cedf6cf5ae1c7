// Package batch turns a simulated creature into a WebP frame sequence.
// Simulation is sequential because behavior state carries across frames;
// rasterizing and encoding the snapshots then fans out over a worker pool.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"lowpoly-creature/internal/creature"
	"lowpoly-creature/internal/mathutil"
	"lowpoly-creature/internal/postprocess"
	"lowpoly-creature/internal/raster"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared settings for a preview run.
type Config struct {
	OutputDir   string
	RenderSize  int
	Supersample int
	WebPQuality int
	Workers     int
	Camera      raster.Camera
}

// Frame is one simulated snapshot queued for rendering.
type Frame struct {
	Index     int
	State     string
	Positions []mathutil.Vec3
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Simulate advances the creature at a fixed timestep and snapshots the
// skinned surface after every step.
func Simulate(c *creature.Creature, frames, fps int) []Frame {
	dt := 1.0 / float64(fps)
	out := make([]Frame, frames)
	for i := 0; i < frames; i++ {
		c.Update(dt)
		pos, _ := c.SkinnedMesh(nil, nil)
		out[i] = Frame{
			Index:     i,
			State:     string(c.Behavior.Locomotion.State),
			Positions: pos,
		}
	}
	return out
}

// Run renders all frames using a worker pool.
func Run(cfg Config, c *creature.Creature, frames []Frame) []Result {
	total := len(frames)
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
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
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
				results[idx] = renderFrame(cfg, c, frames[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, c *creature.Creature, frame Frame) Result {
	img := raster.RenderMesh(frame.Positions, c.Mesh.UVs, c.Material.Texture, c.Material.BaseColor, raster.Options{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Camera:      cfg.Camera,
	})

	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.webp", frame.Index))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: frame.Index, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: frame.Index, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: frame.Index, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: frame.Index, Path: outPath, Success: true}
}
