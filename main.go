package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to a YAML render configuration file")
	sceneName := flag.String("scene", "default", "Built-in scene name, scene name under scenes/, or path to a .yaml scene file")
	outputPath := flag.String("output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	format := flag.String("format", "", "Output format: ppm, png, bmp or tiff (default: from -output extension, else ppm)")
	width := flag.Int("width", 0, "Image width in pixels (0 keeps the configured camera)")
	samples := flag.Int("spp", 0, "Samples per pixel (0 keeps the configured camera)")
	depth := flag.Int("depth", 0, "Maximum bounce depth (0 keeps the configured camera)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect)")
	seed := flag.Int64("seed", 42, "Base random seed; equal seeds give identical images")
	gamma := flag.Float64("gamma", 1.0, "Output gamma, must be > 0; 1 writes linear values")
	scenesDir := flag.String("scenes-dir", "", "Directory searched for .yaml scenes (default scenes/)")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Printf("Error loading config: %v", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags given explicitly win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Render.Scene = *sceneName
		case "output":
			cfg.Render.Output = *outputPath
		case "format":
			cfg.Render.Format = *format
		case "workers":
			cfg.Render.Workers = *workers
		case "seed":
			cfg.Render.Seed = *seed
		case "gamma":
			cfg.Render.Gamma = *gamma
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	logger := renderer.NewDefaultLogger()

	if *list {
		if err := listScenes(*scenesDir, logger); err != nil {
			log.Printf("Error listing scenes: %v", err)
			os.Exit(1)
		}
		return
	}

	logHostInfo(logger)

	selectedScene, err := createSceneIn(cfg.Render.Scene, *scenesDir, cfg.Render.Seed)
	if err != nil {
		log.Printf("Error creating scene: %v", err)
		os.Exit(1)
	}
	logger.Printf("Using scene %q (%d objects)\n", selectedScene.Name, selectedScene.World.Len())

	camera, err := buildCamera(cfg.Camera, selectedScene, renderer.CameraConfig{
		Width:           *width,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
	})
	if err != nil {
		log.Printf("Error creating camera: %v", err)
		os.Exit(1)
	}

	raytracer, err := renderer.NewRaytracer(selectedScene.World, camera, renderer.RenderOptions{
		NumWorkers: cfg.Render.Workers,
		Seed:       cfg.Render.Seed,
	}, logger)
	if err != nil {
		log.Printf("Error creating raytracer: %v", err)
		os.Exit(1)
	}

	frame, _, err := raytracer.Render()
	if err != nil {
		log.Printf("Error rendering: %v", err)
		os.Exit(1)
	}

	filename, outputFormat, err := resolveOutput(cfg.Render, selectedScene.Name, time.Now())
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	// Output failures are not retried
	if err := output.SaveFile(filename, frame, outputFormat, cfg.Render.Gamma); err != nil {
		log.Printf("Error saving render: %v", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Printf("  %-10s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Use -list to also show the .yaml scenes under scenes/.")
	fmt.Println("Output is saved to output/<scene>/render_<timestamp>.ppm unless -output is given.")
}

// buildCamera layers the config file's camera section over the scene's camera, then the
// non-zero command line overrides on top
func buildCamera(section config.CameraSection, s *scene.Scene, flags renderer.CameraConfig) (*renderer.Camera, error) {
	configured, err := section.Apply(s.CameraConfig)
	if err != nil {
		return nil, err
	}
	s.CameraConfig = configured
	return s.NewCamera(flags)
}

// createSceneIn resolves name to a built-in scene, a .yaml path, or <scenesDir>/<name>.yaml
func createSceneIn(name, scenesDir string, seed int64) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}

	s, err := scene.Load(name, seed)
	if err == nil || !errors.Is(err, scene.ErrUnknownScene) {
		return s, err
	}

	if scenesDir == "" {
		scenesDir = "scenes"
	}
	candidate := filepath.Join(scenesDir, name+".yaml")
	if _, statErr := os.Stat(candidate); statErr == nil {
		return scene.LoadYAMLScene(candidate)
	}

	return nil, err
}

// resolveOutput picks the output file and format. An explicit format wins; otherwise
// the format comes from the output extension, and PPM is used when neither is given.
func resolveOutput(render config.RenderConfig, sceneName string, now time.Time) (string, output.Format, error) {
	var format output.Format
	var err error

	switch {
	case render.Format != "":
		format, err = output.ParseFormat(render.Format)
	case render.Output != "":
		format, err = output.FormatFromPath(render.Output)
	default:
		format = output.FormatPPM
	}
	if err != nil {
		return "", "", err
	}

	if render.Output != "" {
		return render.Output, format, nil
	}

	dirName := strings.ReplaceAll(filepath.Base(sceneName), " ", "-")
	if dirName == "" || dirName == "." || dirName == string(filepath.Separator) {
		dirName = "scene"
	}
	filename := filepath.Join("output", dirName, fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), format))
	return filename, format, nil
}

// listScenes prints every known scene grouped by category
func listScenes(scenesDir string, logger core.Logger) error {
	response, err := scene.ListAllScenes(scenesDir, logger)
	if err != nil {
		return err
	}

	for _, group := range response.Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			if info.Description != "" {
				fmt.Printf("  %-28s %s - %s\n", info.ID, info.DisplayName, info.Description)
			} else {
				fmt.Printf("  %-28s %s\n", info.ID, info.DisplayName)
			}
		}
	}
	return nil
}

// logHostInfo logs the CPU the render runs on
func logHostInfo(logger core.Logger) {
	physical, err := cpu.Counts(false)
	if err != nil {
		physical = 0
	}
	model := "unknown CPU"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		model = infos[0].ModelName
	}
	logger.Printf("Host: %s (%d physical cores, %d logical)\n", model, physical, renderer.DefaultWorkerCount())
}
