package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	// Registers the generated OpenAPI document with swag.
	_ "overlaycast/docs"
)

// RegisterDocs mounts the Swagger UI and its doc.json under /swagger.
//
// docs.SwaggerInfo is shared by every doc.json request, so it is left as generated: an empty
// Host and Schemes make the UI target whichever host served the page.
func RegisterDocs(app *fiber.App) {
	app.Get("/swagger/*", swagger.HandlerDefault)
}
