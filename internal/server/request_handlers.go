package server

import (
	"friendconnect/internal/cache"
	"friendconnect/internal/middleware"
	"friendconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendRequestBody is the legacy sendRequest payload. The field name keeps the
// original client's spelling.
type SendRequestBody struct {
	RecieverID uint `json:"recieverId" validate:"required,gt=0"`
}

// HandleRequestBody is the legacy handleRequest payload.
type HandleRequestBody struct {
	SenderID   uint  `json:"senderId" validate:"required,gt=0"`
	IsAccepted *bool `json:"isAccepted" validate:"required"`
}

// SendRequest godoc
// @Summary Send a friend request
// @Tags user
// @Accept json
// @Produce json
// @Param request body SendRequestBody true "receiver"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} models.ErrorResponse
// @Failure 411 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /user/sendRequest [post]
func (s *Server) SendRequest(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var body SendRequestBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewValidationError("Invalid inputs"))
	}
	if err := s.validate.Struct(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewValidationError("Invalid inputs"))
	}

	request, err := s.relService.SendRequest(ctx, userID, body.RecieverID)
	if err != nil {
		middleware.RelationshipOps.WithLabelValues("send_request", "error").Inc()
		appErr := asAppError(err)
		switch {
		case appErr == nil:
			return models.RespondWithError(c, fiber.StatusLengthRequired,
				&models.AppError{Code: "INTERNAL_ERROR", Message: "An error occured while sending request", Err: err})
		case appErr.Code == "CONFLICT":
			return models.RespondWithError(c, fiber.StatusConflict, appErr)
		case appErr.Code == "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusLengthRequired,
				models.NewNotFoundError("couldn't find the user"))
		case appErr.Code == "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusLengthRequired, appErr)
		default:
			return models.RespondWithError(c, fiber.StatusLengthRequired,
				&models.AppError{Code: appErr.Code, Message: "An error occured while sending request", Err: err})
		}
	}
	middleware.RelationshipOps.WithLabelValues("send_request", "ok").Inc()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Friend request sent successfully",
		"request": request,
	})
}

// HandleRequest godoc
// @Summary Accept or reject a pending friend request
// @Tags user
// @Accept json
// @Produce json
// @Param request body HandleRequestBody true "sender and decision"
// @Success 200 {object} map[string]interface{}
// @Failure 411 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /user/handleRequest [post]
func (s *Server) HandleRequest(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var body HandleRequestBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewValidationError("couldn't find sender ID"))
	}
	if err := s.validate.Struct(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusLengthRequired,
			models.NewValidationError("couldn't find sender ID"))
	}
	accepted := *body.IsAccepted

	if err := s.relService.HandleRequest(ctx, userID, body.SenderID, accepted); err != nil {
		middleware.RelationshipOps.WithLabelValues("handle_request", "error").Inc()
		appErr := asAppError(err)
		switch {
		case appErr == nil:
			return models.RespondWithError(c, fiber.StatusLengthRequired,
				&models.AppError{Code: "INTERNAL_ERROR", Message: "An error occurred while processing the friend request", Err: err})
		case appErr.Message == "Friend Request not found":
			return models.RespondWithError(c, fiber.StatusLengthRequired, appErr)
		case appErr.Code == "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusLengthRequired,
				models.NewNotFoundError("Sender or Reciever don't exist"))
		case appErr.Code == "CONFLICT":
			return models.RespondWithError(c, fiber.StatusLengthRequired, appErr)
		default:
			return models.RespondWithError(c, fiber.StatusLengthRequired,
				&models.AppError{Code: appErr.Code, Message: "An error occurred while processing the friend request", Err: err})
		}
	}
	middleware.RelationshipOps.WithLabelValues("handle_request", "ok").Inc()

	// Both profiles changed shape if the request was accepted.
	cache.Invalidate(ctx, cache.ProfileKey(userID))
	cache.Invalidate(ctx, cache.ProfileKey(body.SenderID))

	message := "Friend request rejected"
	if accepted {
		message = "Friend request accepted"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": message,
	})
}

// GetRequests godoc
// @Summary List pending sent and received requests
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /user/getRequest [get]
func (s *Server) GetRequests(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	sent, received, err := s.relService.GetRequests(ctx, userID)
	if err != nil {
		if appErr := asAppError(err); appErr != nil && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("User not found"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if sent == nil {
		sent = []models.UserSummary{}
	}
	if received == nil {
		received = []models.UserSummary{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sentRequests":     sent,
		"receivedRequests": received,
	})
}
