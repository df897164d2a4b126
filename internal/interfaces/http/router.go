package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/rocketstore-api/internal/application/customers"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *customers.CustomerUseCase
	AppName    string
	// Gatherer para /metrics; nil omite la ruta.
	Gatherer prometheus.Gatherer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	customersGroup := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customersGroup.Post("/", customerHandler.Create)
	customersGroup.Get("/", customerHandler.List)
	customersGroup.Get("/:id", customerHandler.GetByID)
	customersGroup.Delete("/:id", customerHandler.DeleteByID)
}
