package main

import (
	"fmt"
	"os"

	"foliot/internal/api"
	"foliot/internal/cli"
	"foliot/internal/config"
	"foliot/internal/validation"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	store, err := config.CreateStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	validator := validation.NewEntryValidator()
	if cfg.Validation.StrictSpan {
		validator = validation.NewStrictEntryValidator()
	}

	app := cli.NewApp(api.New(store, validator), cfg, store)
	if err := cli.NewRootCommand(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
