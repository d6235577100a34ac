package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// scenesDir is where YAML scene files are discovered
var scenesDir string

var rootCmd = &cobra.Command{
	Use:   "raytracer",
	Short: "A Whitted-style ray tracer with mirror reflections",
	Long: `raytracer renders scenes of spheres and planes lit by point and directional
lights. Scenes are either built in or described in YAML files; output can be
written as PNG, JPEG, BMP or TIFF, or served over HTTP.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&scenesDir, "scenes-dir", "scenes", "Directory containing YAML scene files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
