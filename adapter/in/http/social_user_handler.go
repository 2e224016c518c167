package http

import (
	"social_server/core/port/in"
	"social_server/pkg/apperr"
	"social_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	service in.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service in.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register registers user routes
func (h *UserHandler) Register(router fiber.Router) {
	users := router.Group("/users")

	users.Get("/", h.List)
	users.Post("/", h.Create)
	users.Get("/:userId", h.Get)
	users.Put("/:userId", h.Update)
	users.Delete("/:userId", h.Delete)
}

// List returns all users with their thoughts resolved. No pagination.
func (h *UserHandler) List(c *fiber.Ctx) error {
	details, err := h.service.ListUsers(c.Context())
	if err != nil {
		return err
	}

	users := make([]*UserListResponse, 0, len(details))
	for _, d := range details {
		users = append(users, toUserListResponse(d))
	}
	return response.OK(c, users)
}

// Get returns one user with thoughts and friends fully resolved.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := paramObjectID(c, "userId")
	if err != nil {
		return err
	}

	detail, err := h.service.GetUser(c.Context(), id)
	if err != nil {
		return err
	}
	return response.OK(c, toUserDetailResponse(detail))
}

// Create creates a new user
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req in.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	user, err := h.service.CreateUser(c.Context(), &req)
	if err != nil {
		return err
	}
	return response.Created(c, toUserResponse(user))
}

// Update replaces the user's username and email
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramObjectID(c, "userId")
	if err != nil {
		return err
	}

	var req in.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	user, err := h.service.UpdateUser(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return response.OK(c, toUserResponse(user))
}

// Delete removes the user and cascades to its thoughts and to other
// users' friend lists.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramObjectID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Context(), id); err != nil {
		return err
	}
	return response.OK(c, response.Message{
		Message: "user and associated thoughts deleted and removed from friend lists",
	})
}
