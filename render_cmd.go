package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
	"github.com/df07/go-raytracer/pkg/watcher"
	"github.com/spf13/cobra"
)

// renderOptions holds the render command's flags
type renderOptions struct {
	Scene    string
	Output   string
	Width    int
	Height   int
	Depth    int
	Workers  int
	TileSize int
	Scale    float64
	Watch    bool
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render [scene]",
	Short: "Render a scene to an image file",
	Long: `Render a built-in scene, a scene from the scenes directory or a YAML file.
Output is saved to output/<scene>/render_<timestamp>.png unless --output is set;
the output extension selects the format (png, jpg, bmp, tif).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	defaults := renderer.DefaultConfig()
	renderCmd.Flags().StringVarP(&renderOpts.Scene, "scene", "s", "default", "Scene ID or path to a YAML scene file")
	renderCmd.Flags().StringVarP(&renderOpts.Output, "output", "o", "", "Output file (default output/<scene>/render_<timestamp>.png)")
	renderCmd.Flags().IntVar(&renderOpts.Width, "width", 0, "Override image width")
	renderCmd.Flags().IntVar(&renderOpts.Height, "height", 0, "Override image height")
	renderCmd.Flags().IntVar(&renderOpts.Depth, "depth", -1, "Override maximum mirror recursion depth")
	renderCmd.Flags().IntVar(&renderOpts.Workers, "workers", defaults.NumWorkers, "Number of parallel workers (0 = CPU count)")
	renderCmd.Flags().IntVar(&renderOpts.TileSize, "tile-size", defaults.TileSize, "Tile size in pixels")
	renderCmd.Flags().Float64Var(&renderOpts.Scale, "scale", 1.0, "Resample the output by this factor")
	renderCmd.Flags().BoolVarP(&renderOpts.Watch, "watch", "w", false, "Re-render whenever the YAML scene file changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	opts := renderOpts
	if len(args) == 1 {
		opts.Scene = args[0]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger := renderer.NewDefaultLogger()
	if _, err := renderOnce(ctx, opts, logger); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}
	return watchAndRender(ctx, opts, logger)
}

// renderOnce renders opts.Scene and writes the image, returning its path
func renderOnce(ctx context.Context, opts renderOptions, logger core.Logger) (string, error) {
	s, err := createScene(opts.Scene)
	if err != nil {
		return "", err
	}
	if opts.Width > 0 {
		s.Width = opts.Width
	}
	if opts.Height > 0 {
		s.Height = opts.Height
	}
	if opts.Depth >= 0 {
		s.MaxRecursionDepth = opts.Depth
	}

	config := renderer.Config{TileSize: opts.TileSize, NumWorkers: opts.Workers}
	raster, _, err := renderer.Render(ctx, s, config, logger)
	if err != nil {
		return "", err
	}

	var img image.Image = raster.ToRGBA()
	if img, err = loaders.ScaleImage(img, opts.Scale); err != nil {
		return "", err
	}

	output := opts.Output
	if output == "" {
		outputDir, err := createOutputDir(opts.Scene)
		if err != nil {
			return "", err
		}
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	} else if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	if err := loaders.SaveImage(output, img); err != nil {
		return "", err
	}
	logger.Printf("Render saved as %s\n", output)
	return output, nil
}

// watchAndRender re-renders every time the scene file changes until ctx is done
func watchAndRender(ctx context.Context, opts renderOptions, logger core.Logger) error {
	path := sceneFilePath(opts.Scene)
	if path == "" {
		return fmt.Errorf("--watch needs a YAML scene file, %q is built in", opts.Scene)
	}

	fw, err := watcher.NewFileWatcher(300*time.Millisecond, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	changed := make(chan struct{}, 1)
	if err := fw.Watch([]string{path}, func(string) {
		select {
		case changed <- struct{}{}:
		default:
			// A render is already queued
		}
	}); err != nil {
		return err
	}
	fw.Start()

	logger.Printf("Watching %s for changes (Ctrl+C to stop)...\n", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			logger.Printf("%s changed, re-rendering...\n", filepath.Base(path))
			if _, err := renderOnce(ctx, opts, logger); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.Printf("Render failed: %v\n", err)
			}
		}
	}
}

// resolveSceneID maps a bare name found in the scenes directory to its
// "yaml:" ID; built-in IDs, "yaml:" IDs and file paths pass through
func resolveSceneID(sceneName string) string {
	if _, ok := scene.NewBuiltinScene(sceneName); ok {
		return sceneName
	}
	if strings.HasPrefix(sceneName, "yaml:") || scene.IsSceneFile(sceneName) {
		return sceneName
	}
	if _, err := os.Stat(filepath.Join(scenesDir, sceneName+".yaml")); err == nil {
		return "yaml:" + sceneName
	}
	return sceneName
}

// createScene builds the named scene
func createScene(sceneName string) (*scene.Scene, error) {
	return scene.Resolve(resolveSceneID(sceneName), scenesDir)
}

// sceneFilePath returns the YAML file behind sceneName, or "" for built-in scenes
func sceneFilePath(sceneName string) string {
	id := resolveSceneID(sceneName)
	if name, ok := strings.CutPrefix(id, "yaml:"); ok {
		return filepath.Join(scenesDir, name+".yaml")
	}
	if scene.IsSceneFile(id) {
		return id
	}
	return ""
}

// createOutputDir creates output/<scene> and returns its path
func createOutputDir(sceneName string) (string, error) {
	base := strings.TrimPrefix(sceneName, "yaml:")
	if scene.IsSceneFile(base) {
		base = strings.TrimSuffix(filepath.Base(base), filepath.Ext(base))
	}
	if base == "" {
		base = "scene"
	}

	outputDir := filepath.Join("output", base)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return outputDir, nil
}
