// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/api"
	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/entities"
)

// ToAPIContactCandidate maps a resolved contact to the transport document.
func ToAPIContactCandidate(c entities.ContactCandidate) api.ContactCandidate {
	return api.ContactCandidate{
		Id:        c.ID,
		Title:     c.Title,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Company:   c.Company,
		AccountId: c.AccountID,
	}
}

// FromAPIMeetingRequest builds the writer input from the transport payload.
func FromAPIMeetingRequest(body api.MeetingRequestBody) entities.MeetingRequestInput {
	return entities.MeetingRequestInput{
		AssigneeID:  body.AssigneeId,
		AccountID:   body.AccountId,
		Duration:    body.Duration,
		RequestID:   body.RequestId,
		NPINumber:   body.NPINumber,
		InviteeName: body.InviteeName,
		Email:       body.Email,
		Phone:       body.Phone,
	}
}
