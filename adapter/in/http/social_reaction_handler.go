package http

import (
	"social_server/core/port/in"
	"social_server/pkg/apperr"
	"social_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReactionHandler handles HTTP requests for reaction operations
type ReactionHandler struct {
	service in.ReactionService
}

// NewReactionHandler creates a new ReactionHandler
func NewReactionHandler(service in.ReactionService) *ReactionHandler {
	return &ReactionHandler{service: service}
}

// Register registers reaction routes
func (h *ReactionHandler) Register(router fiber.Router) {
	reactions := router.Group("/reactions")

	reactions.Post("/:thoughtId", h.Create)
	reactions.Get("/:reactionId", h.Get)
	reactions.Put("/:reactionId", h.Update)
	reactions.Delete("/:reactionId/thoughts/:thoughtId", h.Delete)
}

type createReactionBody struct {
	ReactionBody string `json:"reactionBody"`
	UserID       string `json:"userId"`
}

// Create appends a reaction to the named thought
func (h *ReactionHandler) Create(c *fiber.Ctx) error {
	thoughtID, err := paramObjectID(c, "thoughtId")
	if err != nil {
		return err
	}

	var body createReactionBody
	if err := c.BodyParser(&body); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	userID, err := parseObjectID("userId", body.UserID)
	if err != nil {
		return err
	}

	thought, err := h.service.CreateReaction(c.Context(), thoughtID, &in.CreateReactionRequest{
		ReactionBody: body.ReactionBody,
		UserID:       userID,
	})
	if err != nil {
		return err
	}
	return response.Created(c, toThoughtResponse(thought))
}

// Get finds one reaction by id across all thoughts
func (h *ReactionHandler) Get(c *fiber.Ctx) error {
	reactionID, err := paramObjectID(c, "reactionId")
	if err != nil {
		return err
	}

	reaction, err := h.service.GetReaction(c.Context(), reactionID)
	if err != nil {
		return err
	}
	return response.OK(c, toReactionResponse(reaction))
}

// Update replaces the reaction body in place
func (h *ReactionHandler) Update(c *fiber.Ctx) error {
	reactionID, err := paramObjectID(c, "reactionId")
	if err != nil {
		return err
	}

	var body in.UpdateReactionRequest
	if err := c.BodyParser(&body); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	thought, err := h.service.UpdateReaction(c.Context(), reactionID, body.ReactionBody)
	if err != nil {
		return err
	}
	return response.OK(c, toThoughtResponse(thought))
}

// Delete removes the reaction from the named thought
func (h *ReactionHandler) Delete(c *fiber.Ctx) error {
	reactionID, err := paramObjectID(c, "reactionId")
	if err != nil {
		return err
	}
	thoughtID, err := paramObjectID(c, "thoughtId")
	if err != nil {
		return err
	}

	thought, err := h.service.DeleteReaction(c.Context(), thoughtID, reactionID)
	if err != nil {
		return err
	}
	return response.OK(c, toThoughtResponse(thought))
}
