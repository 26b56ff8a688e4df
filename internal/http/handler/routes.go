package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"overlaycast/internal/segment"
	"overlaycast/internal/service"
)

// Dependencies are the collaborators the routes dispatch to.
// DB may be nil when overlays live in memory.
type Dependencies struct {
	DB       Pinger
	Overlays service.OverlayService
	Segments segment.Source
	Landing  []byte
	Log      *slog.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Every route answers cross-origin requests from any origin.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", LandingPage(deps.Landing))
	app.Get("/hls/:filename", ServeSegment(deps.Segments, log))

	api := app.Group("/api")
	api.Post("/overlays", CreateOverlay(deps.Overlays))
	api.Get("/overlays", ListOverlays(deps.Overlays))
	api.Put("/overlays/:id", UpdateOverlay(deps.Overlays))
	api.Delete("/overlays/:id", DeleteOverlay(deps.Overlays))

	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())
}
