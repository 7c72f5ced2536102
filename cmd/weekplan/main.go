package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rdo34/weekplan/internal/config"
	"github.com/rdo34/weekplan/internal/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.MustLoad()

	// If a CLI subcommand is provided, handle it and exit.
	if len(os.Args) > 1 {
		if handled, code := runCLI(cfg, os.Args[1:]); handled {
			os.Exit(code)
			return
		}
	}
	if err := ui.New(cfg).Run(); err != nil {
		panic(err)
	}
}
