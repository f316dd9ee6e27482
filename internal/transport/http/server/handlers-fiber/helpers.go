package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/api"
	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/entities"
	"github.com/gofiber/fiber/v2"
)

const missingDataMessage = "Expected request data not provided"

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	typ := api.CANNOTGETRECORD
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrContactNotFound):
		status = http.StatusNotFound
		msg = "A custom error occurred"
	case errors.Is(err, entities.ErrWriteAborted):
		status = http.StatusConflict
		typ = api.OPERATIONNOTALLOWED
		msg = err.Error()
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(typ, msg))
}

func errorResponse(typ api.ErrorType, msg string) api.ErrorResponse {
	return api.ErrorResponse{Errors: []api.Error{{Type: typ, Message: msg}}}
}

func validationError(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(api.ValidationResponse{Error: missingDataMessage})
}
