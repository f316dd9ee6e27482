package usecase

import (
	"context"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/entities"
)

// ContactUsecaseInterface abstracts territory contact resolution for the delivery layer.
type ContactUsecaseInterface interface {
	ResolveContact(ctx context.Context, zip, groupSpecialty string) (*entities.ContactCandidate, error)
}

// MeetingRequestUsecaseInterface abstracts meeting request creation.
type MeetingRequestUsecaseInterface interface {
	CreateMeetingRequest(ctx context.Context, input entities.MeetingRequestInput) (*entities.MeetingRequest, error)
}
