package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ipersids/go-ray-tracer/pkg/loaders"
	"github.com/ipersids/go-ray-tracer/pkg/renderer"
	"github.com/ipersids/go-ray-tracer/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Path to the JSON scene description (required)")
	outPath := flag.String("out", "", "Output image path (.png or .ppm); default output/render_<timestamp>.png")
	width := flag.Int("width", 800, "Canvas width in pixels")
	height := flag.Int("height", 600, "Canvas height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help || *scenePath == "" {
		fmt.Println("Phong Ray Tracer")
		fmt.Println("Usage: go-ray-tracer -scene <file> [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		if *scenePath == "" && !*help {
			os.Exit(2)
		}
		return
	}

	if err := run(*scenePath, *outPath, *width, *height, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenePath, outPath string, width, height, workers int) error {
	desc, err := loaders.LoadScene(scenePath)
	if err != nil {
		return err
	}

	world, camera, err := scene.Build(desc, width, height)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	startTime := time.Now()
	canvas, err := renderer.NewRenderer(world, camera, workers, logger).Render()
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if outPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join("output", fmt.Sprintf("render_%s.png", timestamp))
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(outPath), ".ppm") {
		err = canvas.WritePPM(file)
	} else {
		err = png.Encode(file, canvas.ToImage())
	}
	if err != nil {
		return fmt.Errorf("writing image: %w", err)
	}

	fmt.Printf("Render saved as %s\n", outPath)
	return nil
}
