package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/df07/go-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory containing YAML scene files")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	webServer := server.NewServer(*port, *scenesDir)

	log.Printf("Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=mirror", *port)

	if err := webServer.Start(ctx); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
