package trainformation

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/formation/pkg/ctdf"
	"github.com/travigo/formation/pkg/formation"
	"github.com/travigo/formation/pkg/opendata"
)

const maxDecoders = 16

type FormationSource interface {
	GetFormation(ctx context.Context, query opendata.FormationQuery) (*opendata.FormationResponse, error)
}

type Service struct {
	Source FormationSource
}

func (s *Service) Train(ctx context.Context, query opendata.FormationQuery) (*ctdf.TrainFormation, error) {
	response, err := s.Source.GetFormation(ctx, query)
	if err != nil {
		return nil, err
	}

	trainFormation, err := BuildTrainFormation(response, query)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("evu", query.EVU).
		Int("train", query.TrainNumber).
		Int("stops", len(trainFormation.Stops)).
		Msg("Decoded train formation")

	return trainFormation, nil
}

// BuildTrainFormation decodes the formation string at every stop of an upstream response.
// Stops keep the upstream order.
func BuildTrainFormation(response *opendata.FormationResponse, query opendata.FormationQuery) (*ctdf.TrainFormation, error) {
	trainFormation := &ctdf.TrainFormation{
		EVU:           query.EVU,
		TrainNumber:   query.TrainNumber,
		OperationDate: query.Date(),
		LastUpdate:    response.LastUpdate,
		Stops:         []*ctdf.StopFormation{},
	}

	if response.TrainMetaInformation.TrainNumber != 0 {
		trainFormation.TrainNumber = response.TrainMetaInformation.TrainNumber
	}

	p := pool.NewWithResults[*stopResult]().WithErrors()
	p.WithMaxGoroutines(maxDecoders)

	for index, scheduled := range response.FormationsAtScheduledStops {
		index, scheduled := index, scheduled
		p.Go(func() (*stopResult, error) {
			stop, err := decodeStop(response, scheduled)
			if err != nil {
				return nil, fmt.Errorf("stop %d: %w", index, err)
			}

			return &stopResult{Index: index, Stop: stop}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	stops := make([]*ctdf.StopFormation, len(response.FormationsAtScheduledStops))
	for _, result := range results {
		stops[result.Index] = result.Stop
	}
	trainFormation.Stops = stops

	return trainFormation, nil
}

type stopResult struct {
	Index int
	Stop  *ctdf.StopFormation
}

func decodeStop(response *opendata.FormationResponse, scheduled opendata.FormationAtScheduledStop) (*ctdf.StopFormation, error) {
	stop := &ctdf.StopFormation{}

	if err := copier.Copy(stop, &scheduled.ScheduledStop); err != nil {
		return nil, err
	}

	stop.FormationString = scheduled.FormationShort.FormationShortString
	stop.Sections = formation.Decode(stop.FormationString)
	stop.Direction = ctdf.TravelDirectionUnknown

	if len(stop.Sections) > 0 {
		vehicleSectors := response.FirstVehicleSectors(scheduled.ScheduledStop.StopPoint)
		stop.Direction = formation.ResolveDirection(stop.FormationString, vehicleSectors)
	}

	return stop, nil
}
