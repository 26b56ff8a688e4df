package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"overlaycast/internal/http/middleware"
	"overlaycast/internal/segment"
)

// ServeSegment godoc
// @Summary      Serve HLS artifact
// @Description  Returns the playlist or media segment with the given name, byte for byte.
// @Tags         hls
// @Produce      application/vnd.apple.mpegurl
// @Produce      video/mp2t
// @Param        filename  path  string  true  "playlist or segment file name"
// @Success      200
// @Failure      404  {object}  errorPayload
// @Router       /hls/{filename} [get]
func ServeSegment(src segment.Source, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("filename")
		rc, info, err := src.Open(c.UserContext(), name)
		if err != nil {
			if errors.Is(err, segment.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
			}
			log.Error("segment open failed",
				slog.String("request_id", middleware.RequestIDFromContext(c.UserContext())),
				slog.String("name", name),
				slog.String("error", err.Error()),
			)
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Set(fiber.HeaderContentType, segment.ContentType(name))
		if segment.IsPlaylist(name) {
			// The live manifest rolls every few seconds.
			c.Set(fiber.HeaderCacheControl, "no-cache")
		}

		size := -1
		if info.Size > 0 {
			size = int(info.Size)
		}
		return c.SendStream(rc, size)
	}
}
