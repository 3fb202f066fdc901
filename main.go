package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/canvas"
	"github.com/df07/go-sphere-tracer/pkg/demos"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	demo      string
	sceneName string
	pixels    int
	threads   int
	output    string
}

func main() {
	// Parse command line flags
	demo := flag.String("demo", "sphere-parallel", "Demo to run: 'sphere', 'sphere-parallel', 'clock' or 'projectile'")
	sceneName := flag.String("scene", "default", "Sphere scene: "+strings.Join(scene.Names(), ", "))
	pixels := flag.Int("pixels", 400, "Canvas width and height in pixels for sphere and clock demos")
	threads := flag.Int("threads", 0, "Row bands for sphere-parallel (0 = use CPU count)")
	output := flag.String("out", "", "Output file (default output/<demo>/render_<timestamp>.ppm)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Tracer")
		fmt.Println("Usage: sphere-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available demos:")
		fmt.Println("  sphere          - Ray-trace the scene on a single goroutine")
		fmt.Println("  sphere-parallel - Ray-trace the scene in row bands")
		fmt.Println("  clock           - Plot twelve clock-face marks using rotations")
		fmt.Println("  projectile      - Plot a projectile's flight under gravity and wind")
		fmt.Println()
		fmt.Println("Output will be saved to output/<demo>/render_<timestamp>.ppm")
		return
	}

	opts := options{
		demo:      *demo,
		sceneName: *sceneName,
		pixels:    *pixels,
		threads:   *threads,
		output:    *output,
	}
	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	fmt.Printf("Running %s demo...\n", opts.demo)

	startTime := time.Now()
	c, err := renderDemo(opts)
	if err != nil {
		return err
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	filename := opts.output
	if filename == "" {
		// Create timestamped filename
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", opts.demo, fmt.Sprintf("render_%s.ppm", timestamp))
	}

	if err := canvas.Export(c, canvas.FileSink{Path: filename}); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// renderDemo produces the canvas for the selected demo
func renderDemo(opts options) (*canvas.Canvas, error) {
	switch opts.demo {
	case "sphere", "sphere-parallel":
		s, err := scene.ByName(opts.sceneName)
		if err != nil {
			return nil, err
		}
		config := renderer.Config{CanvasPixels: opts.pixels, Threads: opts.threads}
		rt := renderer.NewRaytracer(s, config, renderer.NewDefaultLogger())

		var c *canvas.Canvas
		var stats renderer.RenderStats
		if opts.demo == "sphere" {
			c, stats, err = rt.Render()
		} else {
			c, stats, err = rt.RenderParallel(context.Background())
		}
		if err != nil {
			return nil, err
		}
		fmt.Printf("Hit ratio: %.1f%% of %d pixels\n", stats.HitRatio()*100, stats.TotalPixels)
		return c, nil

	case "clock":
		return demos.RenderClock(opts.pixels)

	case "projectile":
		c, ticks, err := demos.SimulateProjectile(demos.DefaultProjectile(), demos.DefaultEnvironment(), 900, 550)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Projectile flew for %d ticks\n", ticks)
		return c, nil

	default:
		return nil, fmt.Errorf("unknown demo: %s", opts.demo)
	}
}
