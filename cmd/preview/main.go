package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lowpoly-creature/internal/batch"
	"lowpoly-creature/internal/config"
	"lowpoly-creature/internal/creature"
	"lowpoly-creature/internal/mathutil"
	"lowpoly-creature/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	definition := flag.String("definition", "", "Creature definition YAML (default: built-in elephant)")
	texturePath := flag.String("texture", "", "Skin texture file (PNG, JPEG, TGA)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	seed := flag.Int64("seed", 0, "Behavior seed (default: 0)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	fur := flag.Bool("fur", false, "Grow a fur coat")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Definition: *definition,
		Texture:    *texturePath,
		OutputDir:  *outputDir,
		Frames:     *frames,
		Seed:       *seed,
		Quality:    *quality,
		Workers:    *workers,
		Fur:        *fur,
	})

	opts := creature.Options{
		VariantSeed: cfg.VariantSeed,
		Seed:        cfg.Seed,
		Fur:         cfg.Fur,
	}

	if cfg.Definition != "" {
		def, err := creature.LoadDefinition(cfg.Definition)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading definition: %v\n", err)
			os.Exit(1)
		}
		opts.Definition = &def
	}

	if cfg.Texture != "" {
		mat, err := creature.LoadMaterial(cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
		opts.Material = &mat
	}

	c, err := creature.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building creature: %v\n", err)
		os.Exit(1)
	}

	name := "elephant"
	if opts.Definition != nil {
		name = opts.Definition.Name
	}

	fmt.Printf("Low-poly creature preview → WebP\n")
	fmt.Printf("Creature: %s (%d bones, %d triangles)\n", name, len(c.Skeleton.Bones), c.Mesh.TriangleCount())
	fmt.Printf("Frames: %d @ %d fps, Workers: %d\n", cfg.Frames, cfg.FPS, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	snapshots := batch.Simulate(c, cfg.Frames, cfg.FPS)

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		WebPQuality: cfg.WebPQuality,
		Workers:     cfg.Workers,
		Camera: raster.Camera{
			Yaw:   mathutil.Deg2Rad(cfg.CameraYaw),
			Pitch: mathutil.Deg2Rad(cfg.CameraPitch),
		},
	}

	results := batch.Run(batchCfg, c, snapshots)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(snapshots))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, name, cfg.FPS, cfg.RenderSize, snapshots); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
