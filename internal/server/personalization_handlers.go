package server

import (
	"friendconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// PersonalizationBody is the legacy addPersonalization payload. At least one
// of hobby or interest must be set; isDelete removes instead of adding.
type PersonalizationBody struct {
	Hobby    string `json:"hobby"`
	Interest string `json:"interest"`
	IsDelete bool   `json:"isDelete"`
}

// AddPersonalization godoc
// @Summary Add or remove a hobby or interest
// @Tags user
// @Accept json
// @Produce json
// @Param request body PersonalizationBody true "tag payload"
// @Success 200 {object} map[string]interface{}
// @Failure 411 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /user/addPersonalization [put]
func (s *Server) AddPersonalization(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var body PersonalizationBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewValidationError("Invalid inputs"))
	}
	if body.Hobby == "" && body.Interest == "" {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewValidationError("Invalid inputs"))
	}

	apply := func(kind models.TagKind, value string) error {
		if body.IsDelete {
			return s.personalService.RemoveTag(ctx, userID, kind, value)
		}
		return s.personalService.AddTag(ctx, userID, kind, value)
	}

	if body.Hobby != "" {
		if err := apply(models.TagKindHobby, body.Hobby); err != nil {
			return s.respondPersonalizationError(c, err)
		}
	}
	if body.Interest != "" {
		if err := apply(models.TagKindInterest, body.Interest); err != nil {
			return s.respondPersonalizationError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Personalization added successfully",
	})
}

func (s *Server) respondPersonalizationError(c *fiber.Ctx, err error) error {
	appErr := asAppError(err)
	switch {
	case appErr == nil:
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			&models.AppError{Code: "INTERNAL_ERROR", Message: "An error occured while adding personalization", Err: err})
	case appErr.Code == "NOT_FOUND" && appErr.Message == "Couldn't find the user":
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewNotFoundError("Couldn't find user"))
	case appErr.Code == "NOT_FOUND", appErr.Code == "VALIDATION_ERROR":
		return models.RespondWithError(c, fiber.StatusLengthRequired, appErr)
	default:
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			&models.AppError{Code: appErr.Code, Message: "An error occured while adding personalization", Err: err})
	}
}

// GetPersonalization godoc
// @Summary List the caller's hobbies and interests
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 411 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /user/personalization [get]
func (s *Server) GetPersonalization(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	hobbies, interests, err := s.personalService.ListTags(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			&models.AppError{Code: "INTERNAL_ERROR", Message: "An error occured while fetching personalization", Err: err})
	}
	if hobbies == nil {
		hobbies = []string{}
	}
	if interests == nil {
		interests = []string{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"interests": interests,
		"hobbies":   hobbies,
	})
}
