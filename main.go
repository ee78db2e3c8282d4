package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'single'")
	outPath := flag.String("out", "out.ppm", "Output image file (.png for PNG, otherwise binary PPM)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Ivory, glass, rubber and mirror spheres over a checkerboard floor")
		fmt.Println("  single  - One gray diffuse sphere and one light")
		return
	}

	if err := run(*sceneType, *outPath, *workers, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the named scene and writes it to outPath
func run(sceneType, outPath string, workers int, logger core.Logger) error {
	world, err := createScene(sceneType)
	if err != nil {
		return err
	}

	config := renderer.MergeConfig(renderer.DefaultConfig(), renderer.Config{NumWorkers: workers})
	return renderToFile(world, config, outPath, logger)
}

func renderToFile(world *scene.Scene, config renderer.Config, outPath string, logger core.Logger) error {
	fmt.Printf("Rendering %d spheres with %d lights...\n", len(world.Spheres), len(world.Lights))

	fb, stats := renderer.Render(world, config, logger)

	if err := loaders.SaveImage(outPath, fb.Width, fb.Height, fb.RGB8()); err != nil {
		return fmt.Errorf("error saving %s: %w", outPath, err)
	}

	fmt.Printf("Rays per pixel: %.2f (max depth %d)\n", stats.RaysPerPixel(), stats.MaxDepth)
	fmt.Printf("Render saved as %s\n", outPath)
	return nil
}

// createScene creates a scene based on the scene type string
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "single":
		return scene.NewSingleSphereScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}
