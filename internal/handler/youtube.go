package handler

import (
	"learnsphere/internal/dto"
	"learnsphere/internal/service"

	"github.com/gofiber/fiber/v2"
)

// YouTubeHandler handles video search and lookup endpoints.
type YouTubeHandler struct {
	videos service.VideoService
}

// NewYouTubeHandler creates a new YouTubeHandler instance.
func NewYouTubeHandler(videos service.VideoService) *YouTubeHandler {
	return &YouTubeHandler{videos: videos}
}

// Search handles POST /api/youtube/search. Upstream failures are reported
// inside the result body, so this endpoint never returns a 5xx for them.
func (h *YouTubeHandler) Search(c *fiber.Ctx) error {
	var req dto.VideoSearchRequest
	if err := c.BodyParser(&req); err != nil || req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing search query"})
	}

	result := h.videos.Search(c.Context(), req.Query, req.Options)
	return c.JSON(result)
}

// GetVideo handles GET /api/youtube/video/:id.
func (h *YouTubeHandler) GetVideo(c *fiber.Ctx) error {
	video, err := h.videos.GetVideoDetails(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(video)
}

// GetChannel handles GET /api/youtube/channel/:id.
func (h *YouTubeHandler) GetChannel(c *fiber.Ctx) error {
	channel, err := h.videos.GetChannelInfo(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(channel)
}
