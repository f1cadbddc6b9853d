package server

import (
	"errors"
	"time"

	"github.com/shin101/warbler/cache"
	"github.com/shin101/warbler/models"

	"github.com/gofiber/fiber/v2"
)

const profileCacheTTL = 5 * time.Minute

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	var user models.User
	err = cache.CacheAside(ctx, cache.UserProfileKey(uint(id)), &user, profileCacheTTL, func() error {
		u, err := s.userRepo.GetByID(ctx, uint(id))
		if err != nil {
			return err
		}
		user = *u
		return nil
	})
	if err != nil {
		if models.IsNotFound(err) {
			return models.RespondWithError(c, fiber.StatusNotFound, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	user.Password = ""
	return c.JSON(user)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	user.Password = ""
	return c.JSON(user)
}

// DeleteMyAccount handles DELETE /api/users/me. Deletion cascades to the
// user's messages, follow edges, and likes.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	if err := s.userService.DeleteAccount(ctx, userID); err != nil {
		if models.IsNotFound(err) {
			return models.RespondWithError(c, fiber.StatusNotFound, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	cache.Invalidate(ctx, cache.UserProfileKey(userID))
	return c.SendStatus(fiber.StatusNoContent)
}

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	if _, err := s.userRepo.GetByID(ctx, uint(targetID)); err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	if err := s.followRepo.Follow(ctx, userID, uint(targetID)); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "VALIDATION_ERROR" {
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	if err := s.followRepo.Unfollow(ctx, userID, uint(targetID)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	users, err := s.followRepo.Followers(ctx, uint(id))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := c.ParamsInt("id")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid user ID"))
	}

	users, err := s.followRepo.Following(ctx, uint(id))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}
