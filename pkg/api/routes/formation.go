package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/formation/pkg/formation"
	"github.com/travigo/formation/pkg/transforms"
)

func FormationRouter(router fiber.Router) {
	router.Get("/decode", decodeFormation)
	router.Get("/direction", resolveDirection)
}

func decodeFormation(c *fiber.Ctx) error {
	formationString := c.Query("formation")

	if formationString == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter formation is required",
		})
	}

	sections := formation.Decode(formationString)
	transforms.Transform(sections)

	sectionsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: responseGroups(c),
	}, sections)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Formation",
		})
	}

	return c.JSON(fiber.Map{
		"formation": formationString,
		"sections":  sectionsReduced,
	})
}

func resolveDirection(c *fiber.Ctx) error {
	formationString := c.Query("formation")
	sectors := c.Query("sectors")

	if formationString == "" || sectors == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameters formation and sectors are required",
		})
	}

	return c.JSON(fiber.Map{
		"direction": formation.ResolveDirection(formationString, sectors),
		"sectors":   formation.VisualSectors(formationString),
	})
}

func responseGroups(c *fiber.Ctx) []string {
	if c.QueryBool("detail") {
		return []string{"basic", "detailed"}
	}

	return []string{"basic"}
}
