package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/andrebq/courseshelf/cmd/courseshelf/catalog"
	"github.com/andrebq/courseshelf/cmd/courseshelf/serve"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "courseshelf",
		Usage: "Share courses with everyone!",
		Commands: []*cli.Command{
			serve.Cmd(),
			catalog.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
