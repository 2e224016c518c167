package http

import (
	"social_server/core/port/in"
	"social_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FriendHandler handles HTTP requests for friend-list operations
type FriendHandler struct {
	service in.FriendService
}

// NewFriendHandler creates a new FriendHandler
func NewFriendHandler(service in.FriendService) *FriendHandler {
	return &FriendHandler{service: service}
}

// Register registers friend routes under the users resource
func (h *FriendHandler) Register(router fiber.Router) {
	router.Post("/users/:userId/friends/:friendId", h.Add)
	router.Delete("/users/:userId/friends/:friendId", h.Remove)
}

// Add inserts friendId into the user's friend list
func (h *FriendHandler) Add(c *fiber.Ctx) error {
	userID, err := paramObjectID(c, "userId")
	if err != nil {
		return err
	}
	friendID, err := paramObjectID(c, "friendId")
	if err != nil {
		return err
	}

	user, err := h.service.AddFriend(c.Context(), userID, friendID)
	if err != nil {
		return err
	}
	return response.OK(c, toUserResponse(user))
}

// Remove pulls friendId from the user's friend list
func (h *FriendHandler) Remove(c *fiber.Ctx) error {
	userID, err := paramObjectID(c, "userId")
	if err != nil {
		return err
	}
	friendID, err := paramObjectID(c, "friendId")
	if err != nil {
		return err
	}

	user, err := h.service.RemoveFriend(c.Context(), userID, friendID)
	if err != nil {
		return err
	}
	return response.OK(c, toUserResponse(user))
}
