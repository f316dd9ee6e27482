// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ContactInterface exposes the territory lookup queries.
type ContactInterface interface {
	AccountIDsByTerritory(ctx context.Context, zip, groupSpecialty string) ([]string, error)
	TeamMembersByAccounts(ctx context.Context, accountIDs []string) ([]entities.AccountTeamMember, error)
}

// MeetingRequestInterface exposes the meeting request write.
type MeetingRequestInterface interface {
	CreateMeetingRequest(ctx context.Context, mr entities.MeetingRequest) (*entities.MeetingRequest, error)
}
