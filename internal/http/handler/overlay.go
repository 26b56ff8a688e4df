package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"overlaycast/internal/model"
	"overlaycast/internal/service"
)

// decodeOverlay reads the request body as JSON regardless of its declared content type.
func decodeOverlay(c *fiber.Ctx) (model.OverlayInput, error) {
	var in model.OverlayInput
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return in, err
	}
	return in, nil
}

// CreateOverlay godoc
// @Summary      Create overlay
// @Description  Stores a new overlay and returns its id.
// @Tags         overlays
// @Accept       json
// @Produce      json
// @Param        overlay  body      model.OverlayInput  true  "text and position"
// @Success      201      {object}  messageResponse
// @Failure      400      {object}  overlayError
// @Failure      500      {object}  overlayError
// @Router       /api/overlays [post]
func CreateOverlay(svc service.OverlayService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := decodeOverlay(c)
		if err != nil {
			return writeOverlayError(c, fiber.StatusBadRequest, err)
		}

		id, err := svc.Create(c.UserContext(), in)
		if err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				return writeOverlayError(c, fiber.StatusBadRequest, err)
			}
			return writeOverlayError(c, fiber.StatusInternalServerError, err)
		}
		return c.Status(fiber.StatusCreated).JSON(messageResponse{Message: "Overlay created", ID: id})
	}
}

// ListOverlays godoc
// @Summary      List overlays
// @Tags         overlays
// @Produce      json
// @Success      200  {array}   model.Overlay
// @Failure      500  {object}  overlayError
// @Router       /api/overlays [get]
func ListOverlays(svc service.OverlayService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeOverlayError(c, fiber.StatusInternalServerError, err)
		}
		if items == nil {
			items = []model.Overlay{}
		}
		return c.JSON(items)
	}
}

// UpdateOverlay godoc
// @Summary      Update overlay
// @Description  Replaces text and position. An id that matches nothing still succeeds.
// @Tags         overlays
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "overlay id"
// @Param        overlay  body      model.OverlayInput  true  "text and position"
// @Success      200      {object}  messageResponse
// @Failure      500      {object}  overlayError
// @Router       /api/overlays/{id} [put]
func UpdateOverlay(svc service.OverlayService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := decodeOverlay(c)
		if err != nil {
			return writeOverlayError(c, fiber.StatusInternalServerError, err)
		}
		if err := svc.Update(c.UserContext(), c.Params("id"), in); err != nil {
			return writeOverlayError(c, fiber.StatusInternalServerError, err)
		}
		return c.JSON(messageResponse{Message: "Overlay updated"})
	}
}

// DeleteOverlay godoc
// @Summary      Delete overlay
// @Description  Removes an overlay. An id that matches nothing still succeeds.
// @Tags         overlays
// @Produce      json
// @Param        id   path      string  true  "overlay id"
// @Success      200  {object}  messageResponse
// @Failure      500  {object}  overlayError
// @Router       /api/overlays/{id} [delete]
func DeleteOverlay(svc service.OverlayService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeOverlayError(c, fiber.StatusInternalServerError, err)
		}
		return c.JSON(messageResponse{Message: "Overlay deleted"})
	}
}
