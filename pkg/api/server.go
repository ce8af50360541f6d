package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/formation/pkg/api/routes"
	"github.com/travigo/formation/pkg/trainformation"
)

func NewApp(service *trainformation.Service) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.FormationRouter(group.Group("/formation"))
	routes.TrainsRouter(group.Group("/trains"), service)

	return webApp
}

func SetupServer(listen string, service *trainformation.Service) error {
	return NewApp(service).Listen(listen)
}
