package routes

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/travigo/formation/pkg/opendata"
	"github.com/travigo/formation/pkg/trainformation"
	"github.com/travigo/formation/pkg/transforms"
)

func TrainsRouter(router fiber.Router, service *trainformation.Service) {
	router.Get("/:evu/:date/:number", func(c *fiber.Ctx) error {
		return getTrainFormation(c, service)
	})
}

func getTrainFormation(c *fiber.Ctx, service *trainformation.Service) error {
	operationDate, err := time.Parse(time.DateOnly, c.Params("date"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter date should be formatted as YYYY-MM-DD",
		})
	}

	trainNumber, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter number should be an integer",
		})
	}

	trainFormation, err := service.Train(c.UserContext(), opendata.FormationQuery{
		EVU:           c.Params("evu"),
		OperationDate: operationDate,
		TrainNumber:   trainNumber,
	})

	switch {
	case errors.Is(err, opendata.ErrNotFound):
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find a formation for this train",
		})
	case err != nil:
		log.Error().Err(err).Str("evu", c.Params("evu")).Int("train", trainNumber).Msg("Formation lookup failed")

		c.SendStatus(fiber.StatusBadGateway)
		return c.JSON(fiber.Map{
			"error": "Formation service unavailable",
		})
	}

	transforms.Transform(trainFormation)

	trainFormationReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: responseGroups(c),
	}, trainFormation)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Train Formation",
		})
	}

	return c.JSON(trainFormationReduced)
}
