// Package domain contains application Usecases orchestrating domain logic by meeting request.
package domain

import (
	"context"
	"fmt"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/entities"
)

// CreateMeetingRequest builds one meeting request record from the payload
// and persists it. The NPINumber passthrough lands in the invitee locale
// attribute, matching the upstream field mapping.
func (u *Usecase) CreateMeetingRequest(ctx context.Context, input entities.MeetingRequestInput) (*entities.MeetingRequest, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if input.AccountID == "" || input.AssigneeID == "" {
		return nil, fmt.Errorf("%w: accountId and assigneeId are required", entities.ErrInvalidArgument)
	}

	rec := entities.MeetingRequest{
		AssigneeID:    input.AssigneeID,
		AccountID:     input.AccountID,
		Duration:      input.Duration,
		ExternalID:    input.RequestID,
		InviteeLocale: input.NPINumber,
		InviteeName:   input.InviteeName,
		InviteeEmail:  input.Email,
		Phone:         input.Phone,
	}

	res, err := u.repo.CreateMeetingRequest(ctx, rec)
	if err != nil {
		return nil, err
	}

	u.log.Infow("meeting request added", "meeting_request_id", res.ID, "account_id", res.AccountID)
	return res, nil
}
