package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/todolist/internal/client/cli"
	"github.com/dmitrijs2005/todolist/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing app: %v\n", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
