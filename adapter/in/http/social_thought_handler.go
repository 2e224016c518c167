package http

import (
	"social_server/core/port/in"
	"social_server/pkg/apperr"
	"social_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ThoughtHandler handles HTTP requests for thought operations
type ThoughtHandler struct {
	service in.ThoughtService
}

// NewThoughtHandler creates a new ThoughtHandler
func NewThoughtHandler(service in.ThoughtService) *ThoughtHandler {
	return &ThoughtHandler{service: service}
}

// Register registers thought routes
func (h *ThoughtHandler) Register(router fiber.Router) {
	thoughts := router.Group("/thoughts")

	thoughts.Get("/", h.List)
	thoughts.Post("/", h.Create)
	thoughts.Get("/:thoughtId", h.Get)
	thoughts.Put("/:thoughtId", h.Update)
	thoughts.Delete("/:thoughtId", h.Delete)
}

// List returns all thoughts, newest first. No pagination.
func (h *ThoughtHandler) List(c *fiber.Ctx) error {
	thoughts, err := h.service.ListThoughts(c.Context())
	if err != nil {
		return err
	}
	return response.OK(c, toThoughtResponses(thoughts))
}

// Get returns one thought with its embedded reactions
func (h *ThoughtHandler) Get(c *fiber.Ctx) error {
	id, err := paramObjectID(c, "thoughtId")
	if err != nil {
		return err
	}

	thought, err := h.service.GetThought(c.Context(), id)
	if err != nil {
		return err
	}
	return response.OK(c, toThoughtResponse(thought))
}

type createThoughtBody struct {
	ThoughtText string `json:"thoughtText"`
	UserID      string `json:"userId"`
}

// Create creates a thought and links it to its author
func (h *ThoughtHandler) Create(c *fiber.Ctx) error {
	var body createThoughtBody
	if err := c.BodyParser(&body); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	userID, err := parseObjectID("userId", body.UserID)
	if err != nil {
		return err
	}

	thought, err := h.service.CreateThought(c.Context(), &in.CreateThoughtRequest{
		ThoughtText: body.ThoughtText,
		UserID:      userID,
	})
	if err != nil {
		return err
	}
	return response.Created(c, toThoughtResponse(thought))
}

// Update replaces the thought text
func (h *ThoughtHandler) Update(c *fiber.Ctx) error {
	id, err := paramObjectID(c, "thoughtId")
	if err != nil {
		return err
	}

	var body in.UpdateThoughtRequest
	if err := c.BodyParser(&body); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	thought, err := h.service.UpdateThought(c.Context(), id, body.ThoughtText)
	if err != nil {
		return err
	}
	return response.OK(c, toThoughtResponse(thought))
}

// Delete removes the thought and pulls its id from owners' thought lists
func (h *ThoughtHandler) Delete(c *fiber.Ctx) error {
	id, err := paramObjectID(c, "thoughtId")
	if err != nil {
		return err
	}

	if err := h.service.DeleteThought(c.Context(), id); err != nil {
		return err
	}
	return response.OK(c, response.Message{
		Message: "thought deleted and removed from users",
	})
}
