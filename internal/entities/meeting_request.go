// Package entities contains core business entities.
package entities

import "time"

// MeetingRequestInput carries the inbound payload for a new meeting request.
type MeetingRequestInput struct {
	AssigneeID  string
	AccountID   string
	Duration    *float64
	RequestID   *string
	NPINumber   *string
	InviteeName *string
	Email       *string
	Phone       *string
}

// MeetingRequest is a persisted meeting request. CreatedAt is always the
// server instant at write time.
type MeetingRequest struct {
	ID            string
	AssigneeID    string
	AccountID     string
	Duration      *float64
	ExternalID    *string
	InviteeLocale *string
	InviteeName   *string
	InviteeEmail  *string
	Phone         *string
	CreatedAt     time.Time
}
