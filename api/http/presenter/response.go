package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumefill/pkg/form"
	"github.com/artem13815/resumefill/pkg/resume"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Fail maps domain errors to a status code and the single user-facing message.
// Internal causes never reach the client.
func Fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, resume.ErrUnsupportedType):
		return Error(c, http.StatusUnsupportedMediaType, resume.MsgUnsupportedType)
	case errors.Is(err, resume.ErrReadFailed):
		return Error(c, http.StatusBadRequest, resume.MsgReadFailed)
	case errors.Is(err, form.ErrNotFound):
		return Error(c, http.StatusNotFound, "form session not found")
	case errors.Is(err, form.ErrBusy):
		return Error(c, http.StatusConflict, "a resume is already being analyzed")
	case errors.Is(err, form.ErrNotReady):
		return Error(c, http.StatusConflict, "there is no parsed resume to edit yet")
	default:
		return Error(c, http.StatusBadGateway, resume.MsgExtractionFailed)
	}
}
