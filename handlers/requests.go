package handlers

import (
	"errors"

	"staffdesk/controller"
	"staffdesk/models"

	"github.com/gofiber/fiber/v2"
)

// currentController resolves the session controller for the authenticated
// user, or writes a 401 when the token no longer maps to a live session.
func currentController(c *fiber.Ctx) (*controller.Controller, error) {
	userID := c.Locals("userID").(int)
	ctrl := sessions.Controller(userID)
	if ctrl == nil {
		return nil, models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Session expired, log in again"))
	}
	return ctrl, nil
}

// statusForError maps the application error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.CodeInvalidCredentials:
		return fiber.StatusUnauthorized
	case models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeSyncFailure:
		return fiber.StatusBadGateway
	case models.CodeUnauthorized:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// SessionState returns the current session subject and view state.
func SessionState(c *fiber.Ctx) error {
	ctrl, err := currentController(c)
	if ctrl == nil {
		return err
	}

	return c.JSON(fiber.Map{
		"session":   ctrl.CurrentSession(),
		"viewState": ctrl.CurrentViewState(),
		"focused":   ctrl.FocusedRequest(),
	})
}

// ListRequests returns the requests visible to this session, role-filtered.
func ListRequests(c *fiber.Ctx) error {
	ctrl, err := currentController(c)
	if ctrl == nil {
		return err
	}

	requests := ctrl.VisibleRequests()
	if requests == nil {
		requests = []models.Request{}
	}
	return c.JSON(requests)
}

// Summary returns the HR dashboard counts.
func Summary(c *fiber.Ctx) error {
	ctrl, err := currentController(c)
	if ctrl == nil {
		return err
	}

	summary := ctrl.SummaryCounts()
	if summary == nil {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("HR role required"))
	}
	return c.JSON(summary)
}

type submitRequestBody struct {
	Type    string `json:"type"`
	Comment string `json:"comment"`
}

// SubmitRequest creates a new staff request for the session subject.
func SubmitRequest(c *fiber.Ctx) error {
	ctrl, err := currentController(c)
	if ctrl == nil {
		return err
	}

	var body submitRequestBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := ctrl.SubmitRequest(c.Context(), body.Type, body.Comment)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// SelectRequest focuses a request and moves the HR session to details.
func SelectRequest(c *fiber.Ctx) error {
	ctrl, err := currentController(c)
	if ctrl == nil {
		return err
	}

	if err := ctrl.SelectRequest(c.Params("id")); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(ctrl.CurrentViewState())
}

// GoBack steps the session one screen back.
func GoBack(c *fiber.Ctx) error {
	ctrl, err := currentController(c)
	if ctrl == nil {
		return err
	}

	ctrl.GoBack()
	return c.JSON(ctrl.CurrentViewState())
}

// OpenReview moves the HR session from details to review.
func OpenReview(c *fiber.Ctx) error {
	ctrl, err := currentController(c)
	if ctrl == nil {
		return err
	}

	if err := ctrl.OpenReview(); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(ctrl.CurrentViewState())
}

type decideBody struct {
	Status models.Status `json:"status"`
}

// Decide applies the HR decision to the focused request.
func Decide(c *fiber.Ctx) error {
	ctrl, err := currentController(c)
	if ctrl == nil {
		return err
	}

	var body decideBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := ctrl.Decide(c.Context(), body.Status)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(fiber.Map{
		"request":   updated,
		"viewState": ctrl.CurrentViewState(),
	})
}
