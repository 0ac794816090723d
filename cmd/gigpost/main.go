package main

import (
	"context"
	"fmt"
	"os"

	"github.com/andy/gigpost/internal/app"
	"github.com/andy/gigpost/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development (GIGPOST_API_URL, GIGPOST_DB_KEY)
	_ = godotenv.Load()

	// If the user asked for help, avoid initializing the full app (which may prompt)
	skipInit := false
	for _, a := range os.Args[1:] {
		if a == "-h" || a == "--help" || a == "help" {
			skipInit = true
			break
		}
	}

	if !skipInit {
		ctx := context.Background()
		a, err := app.New(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
			os.Exit(1)
		}
		defer a.Close()
		cli.SetApp(a)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
