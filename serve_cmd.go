package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/df07/go-raytracer/web/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve renders over HTTP",
	Long:  "Start an HTTP server exposing /api/health, /api/scenes, /api/scene-config, /api/render and /api/inspect.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to serve on")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return server.NewServer(servePort, scenesDir).Start(ctx)
}
