package handlers_fiber

import (
	"net/http"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/api"
	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/mapper"
	"github.com/gofiber/fiber/v2"
)

// PostHcpRequest resolves the territory point of contact.
func (h *Handler) PostHcpRequest(c *fiber.Ctx) error {
	var body api.ContactRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return validationError(c)
	}
	if body.Zip == "" || body.GroupSpecialty == "" {
		return validationError(c)
	}

	candidate, err := h.uc.ResolveContact(c.Context(), body.Zip, body.GroupSpecialty)
	if err != nil {
		h.log.Errorw("failed to resolve contact", "error", err.Error(), "zip", body.Zip)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIContactCandidate(*candidate))
}
