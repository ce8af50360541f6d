package trainformation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/formation/pkg/formation"
	"github.com/travigo/formation/pkg/opendata"
	"github.com/travigo/formation/pkg/transforms"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func RegisterCLI() []*cli.Command {
	formatFlag := &cli.StringFlag{
		Name:  "format",
		Value: "json",
		Usage: "output format, one of json, yaml or pretty",
	}

	return []*cli.Command{
		{
			Name:      "decode",
			Usage:     "decode a formation string into sectors and wagons",
			ArgsUsage: "<formation>",
			Flags:     []cli.Flag{formatFlag},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return cli.Exit("expected exactly one formation string", 1)
				}

				sections := formation.Decode(c.Args().First())
				transforms.Transform(sections)

				return writeOutput(os.Stdout, c.String("format"), sections)
			},
		},
		{
			Name:      "direction",
			Usage:     "resolve the travel direction of a formation",
			ArgsUsage: "<formation>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "sectors",
					Usage:    "sectors the first vehicle stands in, comma separated",
					Required: true,
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return cli.Exit("expected exactly one formation string", 1)
				}

				fmt.Println(formation.ResolveDirection(c.Args().First(), c.String("sectors")))

				return nil
			},
		},
		{
			Name:      "train",
			Usage:     "fetch and decode the formation of a train for every stop",
			ArgsUsage: "<train number>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "evu",
					Value: "SBBP",
					Usage: "operating railway undertaking",
				},
				&cli.StringFlag{
					Name:  "date",
					Usage: "operation date as YYYY-MM-DD, defaults to today",
				},
				&cli.BoolFlag{
					Name:  "no-cache",
					Usage: "always query the upstream api",
				},
				formatFlag,
			},
			Action: func(c *cli.Context) error {
				trainNumber, err := strconv.Atoi(c.Args().First())
				if err != nil {
					return cli.Exit("train number should be an integer", 1)
				}

				operationDate := time.Now()
				if c.String("date") != "" {
					operationDate, err = time.Parse(time.DateOnly, c.String("date"))
					if err != nil {
						return cli.Exit("date should be formatted as YYYY-MM-DD", 1)
					}
				}

				client, err := opendata.NewClientFromEnvironment()
				if err != nil {
					return err
				}
				if c.Bool("no-cache") {
					client.Cache = nil
				}

				service := &Service{Source: client}
				trainFormation, err := service.Train(c.Context, opendata.FormationQuery{
					EVU:           c.String("evu"),
					OperationDate: operationDate,
					TrainNumber:   trainNumber,
				})
				if errors.Is(err, opendata.ErrNotFound) {
					log.Warn().Int("train", trainNumber).Msg("No formation published for train")
					return cli.Exit("formation not found", 1)
				}
				if err != nil {
					return err
				}

				transforms.Transform(trainFormation)

				return writeOutput(os.Stdout, c.String("format"), trainFormation)
			},
		},
	}
}

func writeOutput(w io.Writer, format string, value any) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(value)
	case "pretty":
		_, err := pretty.Fprintf(w, "%# v\n", value)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
