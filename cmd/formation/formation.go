package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/formation/pkg/api"
	"github.com/travigo/formation/pkg/trainformation"
	"github.com/travigo/formation/pkg/transforms"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("TRAVIGO_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRAVIGO_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	if err := transforms.SetupClient(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load transforms")
	}

	app := &cli.App{
		Name:        "formation",
		Description: "Decodes Swiss train formation strings and serves them over HTTP",

		Commands: append([]*cli.Command{
			api.RegisterCLI(),
		}, trainformation.RegisterCLI()...),
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
