package server

import (
	"errors"

	"friendconnect/internal/cache"
	"friendconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// asAppError unwraps err into an AppError, or nil if it is not one.
func asAppError(err error) *models.AppError {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// pageParams reads the optional limit/offset query parameters. Negative
// values are treated as absent.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 0)
	offset = c.QueryInt("offset", 0)
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListUsers godoc
// @Summary Search users annotated with friend status
// @Tags user
// @Produce json
// @Param filter query string false "name or email substring"
// @Param limit query int false "page size (0 = all)"
// @Param offset query int false "page offset"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /user/bulk [get]
func (s *Server) ListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)
	filter := c.Query("filter", "")
	limit, offset := pageParams(c)

	users, err := s.relService.ListUsers(ctx, userID, filter, limit, offset)
	if err != nil {
		if appErr := asAppError(err); appErr != nil && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Current user not found"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	if len(users) == 0 {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "No users found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users": users,
	})
}

// MutualFriends godoc
// @Summary List friends-of-friends
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /user/mutual [get]
func (s *Server) MutualFriends(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	mutuals, followerCount, err := s.relService.MutualFriends(ctx, userID)
	if err != nil {
		if appErr := asAppError(err); appErr != nil && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusLengthRequired,
				models.NewNotFoundError("User does not exist"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	if followerCount == 0 {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "No friends found",
		})
	}
	if len(mutuals) == 0 {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "No mutual friends found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"mutualFriends": mutuals,
	})
}

// Suggestions godoc
// @Summary Suggest users sharing a hobby or interest
// @Tags user
// @Produce json
// @Param limit query int false "page size (0 = all)"
// @Param offset query int false "page offset"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /user/suggestions [get]
func (s *Server) Suggestions(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)
	limit, offset := pageParams(c)

	suggestions, err := s.relService.Suggestions(ctx, userID, limit, offset)
	if err != nil {
		if appErr := asAppError(err); appErr != nil && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("User not found"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if suggestions == nil {
		suggestions = []models.AnnotatedUser{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"suggestion": suggestions,
	})
}

// profileResponse is the cached shape of GET /user/me.
type profileResponse struct {
	User      *models.User         `json:"user"`
	Followers []models.UserSummary `json:"followers"`
	Following []models.UserSummary `json:"following"`
}

// GetProfile godoc
// @Summary Current user's account with followers and following
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /user/me [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var resp profileResponse
	err := cache.Aside(ctx, cache.ProfileKey(userID), &resp, cache.ProfileTTL, func() error {
		user, following, followers, err := s.relService.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		if following == nil {
			following = []models.UserSummary{}
		}
		if followers == nil {
			followers = []models.UserSummary{}
		}
		resp = profileResponse{User: user, Followers: followers, Following: following}
		return nil
	})
	if err != nil {
		if appErr := asAppError(err); appErr != nil && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusLengthRequired, appErr)
		}
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			&models.AppError{Code: "INTERNAL_ERROR", Message: "An error occured while getting friends", Err: err})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
