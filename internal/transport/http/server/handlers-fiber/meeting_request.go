package handlers_fiber

import (
	"net/http"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/api"
	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/mapper"
	"github.com/gofiber/fiber/v2"
)

// PostHcpMeetingRequest records a new meeting request against an account.
func (h *Handler) PostHcpMeetingRequest(c *fiber.Ctx) error {
	var body api.MeetingRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return validationError(c)
	}
	if body.AccountId == "" || body.AssigneeId == "" {
		return validationError(c)
	}

	if _, err := h.uc.CreateMeetingRequest(c.Context(), mapper.FromAPIMeetingRequest(body)); err != nil {
		h.log.Errorw("failed to create meeting request", "error", err.Error(), "account_id", body.AccountId)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.MeetingRequestCreated{Added: true})
}
