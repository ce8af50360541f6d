package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/formation/pkg/opendata"
	"github.com/travigo/formation/pkg/trainformation"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the formation web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					client, err := opendata.NewClientFromEnvironment()
					if err != nil {
						return err
					}
					if client.APIKey == "" {
						log.Warn().Msg("TRAVIGO_FORMATION_API_KEY not set, train lookups will fail")
					}

					log.Info().Str("listen", c.String("listen")).Msg("Starting web api")

					return SetupServer(c.String("listen"), &trainformation.Service{Source: client})
				},
			},
		},
	}
}
