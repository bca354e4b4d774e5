package main

import (
	"log"
	"os"

	"github.com/itbsclubs/clubdesk/internal/desk/app"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	runErr := application.Run(os.Args[1:])
	if err := application.Close(); err != nil {
		log.Printf("failed to close state store: %v", err)
	}
	if runErr != nil {
		log.Fatalf("%v", runErr)
	}
}
