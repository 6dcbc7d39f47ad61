package main

import (
	"flag"
	"log"
	"os"

	"github.com/softglow/goray/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("goray web server")
	log.Printf("Connect to ws://localhost:%d/ws/render to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
