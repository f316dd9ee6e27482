// Package api defines the transport contract for the HCP composite endpoints.
package api

import "github.com/gofiber/fiber/v2"

// ErrorType classifies typed failure responses.
type ErrorType string

const (
	// CANNOTGETRECORD signals that no contact record could be resolved.
	CANNOTGETRECORD ErrorType = "CANNOT GET RECORD"
	// OPERATIONNOTALLOWED signals a rolled-back record write.
	OPERATIONNOTALLOWED ErrorType = "OPERATION_NOT_ALLOWED"
)

// Error is a single typed failure.
type Error struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

// ErrorResponse wraps typed failures.
type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

// ValidationResponse reports missing request data.
type ValidationResponse struct {
	Error string `json:"error"`
}

// ContactRequestBody is the resolve-contact request payload.
type ContactRequestBody struct {
	Zip            string `json:"zip"`
	GroupSpecialty string `json:"groupSpecialty"`
}

// ContactCandidate is the resolved contact response document. Fields backed
// by null columns are omitted.
type ContactCandidate struct {
	Id        string  `json:"id"`
	Title     *string `json:"title,omitempty"`
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Company   *string `json:"company,omitempty"`
	AccountId string  `json:"accountId"`
}

// MeetingRequestBody is the create-meeting-request payload.
type MeetingRequestBody struct {
	AccountId   string   `json:"accountId"`
	AssigneeId  string   `json:"assigneeId"`
	Duration    *float64 `json:"duration,omitempty"`
	RequestId   *string  `json:"requestId,omitempty"`
	NPINumber   *string  `json:"NPINumber,omitempty"`
	InviteeName *string  `json:"inviteeName,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
}

// MeetingRequestCreated acknowledges a successful meeting request write.
type MeetingRequestCreated struct {
	Added bool `json:"added"`
}

// ServerInterface lists the handlers consumed by RegisterHandlers.
type ServerInterface interface {
	PostHcpRequest(c *fiber.Ctx) error
	PostHcpMeetingRequest(c *fiber.Ctx) error
}

// RegisterHandlers attaches the endpoint routes to the fiber app.
func RegisterHandlers(app *fiber.App, h ServerInterface) {
	app.Post("/hcp/request", h.PostHcpRequest)
	app.Post("/hcp/meeting-request", h.PostHcpMeetingRequest)
}
