package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cheggaaa/pb"

	"github.com/softglow/goray/pkg/ppm"
	"github.com/softglow/goray/pkg/renderer"
	"github.com/softglow/goray/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 225, "Image height in pixels")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("goray renderer")
		fmt.Println("Usage: goray [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output is saved to output/<scene>/render_<timestamp>.ppm")
		return
	}

	if *width < 2 || *height < 2 {
		fmt.Fprintln(os.Stderr, "width and height must both be at least 2")
		os.Exit(2)
	}

	selectedScene := scene.ByName(*sceneName, float64(*width)/float64(*height))
	if selectedScene == nil {
		fmt.Fprintf(os.Stderr, "Unknown scene %q. Available: %s\n", *sceneName, strings.Join(scene.Names(), ", "))
		os.Exit(2)
	}

	config := selectedScene.SamplingConfig
	if *samples > 0 {
		config.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		config.MaxDepth = *depth
	}

	fmt.Printf("Rendering %q at %dx%d, %d samples/pixel...\n", *sceneName, *width, *height, config.SamplesPerPixel)

	bar := pb.StartNew(*height)
	startTime := time.Now()
	frame, stats := renderer.RenderFrame(selectedScene, *width, *height, config, *workers, func(renderer.RowResult) {
		bar.Increment()
	})
	stats.Elapsed = time.Since(startTime)
	bar.Finish()

	outputDir := filepath.Join("output", *sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.ppm", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := ppm.NewEncoder(w, *width, *height).Encode(frame); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v (%.1f samples/pixel", stats.Elapsed, stats.AverageSamples())
	if stats.DegenerateRays > 0 {
		fmt.Printf(", %d degenerate rays dropped", stats.DegenerateRays)
	}
	fmt.Println(")")
	fmt.Printf("Render saved as %s\n", filename)
}
