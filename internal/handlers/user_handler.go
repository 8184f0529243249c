package handlers

import (
	"errors"
	"log"

	"github.com/HimeshRasaily/FlowArt/internal/middleware"
	"github.com/HimeshRasaily/FlowArt/internal/models"
	"github.com/HimeshRasaily/FlowArt/internal/repositories"
	"github.com/HimeshRasaily/FlowArt/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for browsing and editing profiles.
type UserHandler struct {
	directoryService *services.DirectoryService
	authService      *services.AuthService
}

// NewUserHandler creates a new UserHandler. The auth service is needed for
// the Bearer middleware guarding profile updates.
func NewUserHandler(directoryService *services.DirectoryService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		directoryService: directoryService,
		authService:      authService,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("", h.HandleList)
	userRoutes.Get("/:id", h.HandleGet)
	userRoutes.Put("/:id", middleware.AuthRequired(h.authService), h.HandleUpdate)
}

// HandleList returns all users matching the optional query filters. The
// literal "All" for medium/experience means "no filter".
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.UserFilter{
		Medium:     c.Query("medium"),
		Experience: c.Query("experience"),
		Search:     c.Query("search"),
		Limit:      c.QueryInt("limit"),
	}

	users, err := h.directoryService.List(c.UserContext(), filter)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not list users",
		})
	}
	return c.JSON(users)
}

// HandleGet returns a single user profile by ID.
func (h *UserHandler) HandleGet(c *fiber.Ctx) error {
	user, err := h.directoryService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUserID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": services.ErrInvalidUserID.Error(),
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": services.ErrUserNotFound.Error(),
			})
		default:
			log.Printf("Error getting user %s: %v", c.Params("id"), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not get user",
			})
		}
	}
	return c.JSON(user)
}

// HandleUpdate applies a partial profile update. Only the profile owner may
// edit it.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	var patch models.UserUpdate
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	actor := c.Locals("user").(*models.User)
	updated, err := h.directoryService.Update(c.UserContext(), actor.ID, c.Params("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": services.ErrForbidden.Error(),
			})
		case errors.Is(err, services.ErrInvalidUserID), errors.Is(err, services.ErrEmptyUpdate):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": services.ErrUserNotFound.Error(),
			})
		default:
			log.Printf("Error updating user %s: %v", c.Params("id"), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update user",
			})
		}
	}
	return c.JSON(updated)
}
