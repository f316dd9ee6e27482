// Package domain contains application Usecases orchestrating domain logic by territory contact.
package domain

import (
	"context"
	"fmt"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/entities"
)

const (
	titleManager = "manager"
	titleMSL     = "MSL"
)

// ResolveContact finds the single best point of contact for a territory
// given by postal code and group specialty.
//
// Selection keeps two first-match-wins slots over the team member stream.
// A row is tested against the manager rule first; only rows that do not
// fill or already have filled the manager slot are tested against the MSL
// rule. The MSL slot wins on output. A query failure on either lookup is
// logged and treated as an empty result, so resolution degrades to
// ErrContactNotFound rather than failing the request.
func (u *Usecase) ResolveContact(ctx context.Context, zip, groupSpecialty string) (*entities.ContactCandidate, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if zip == "" || groupSpecialty == "" {
		return nil, fmt.Errorf("%w: zip and groupSpecialty are required", entities.ErrInvalidArgument)
	}

	accountIDs, err := u.repo.AccountIDsByTerritory(ctx, zip, groupSpecialty)
	if err != nil {
		u.log.Errorw("failed to query matching accounts", "error", err, "zip", zip)
		accountIDs = nil
	}
	if len(accountIDs) == 0 {
		return nil, entities.ErrContactNotFound
	}

	rows, err := u.repo.TeamMembersByAccounts(ctx, accountIDs)
	if err != nil {
		u.log.Errorw("failed to query account team members", "error", err, "accounts", len(accountIDs))
		rows = nil
	}

	var managerCandidate, mslCandidate *entities.ContactCandidate
	for _, row := range rows {
		title := ""
		if row.Title != nil {
			title = *row.Title
		}
		// A row can fill at most one slot. The manager check runs first,
		// so a row with an absent manager reference is consumed by the
		// manager slot even when its title is MSL.
		switch {
		case managerCandidate == nil && (title == titleManager || row.ManagerID == nil):
			managerCandidate = toCandidate(row)
		case mslCandidate == nil && title == titleMSL:
			mslCandidate = toCandidate(row)
		}
	}

	if mslCandidate != nil {
		u.log.Infow("contact resolved", "contact_id", mslCandidate.ID, "zip", zip)
		return mslCandidate, nil
	}
	if managerCandidate != nil {
		u.log.Infow("contact resolved", "contact_id", managerCandidate.ID, "zip", zip)
		return managerCandidate, nil
	}

	return nil, entities.ErrContactNotFound
}

func toCandidate(row entities.AccountTeamMember) *entities.ContactCandidate {
	return &entities.ContactCandidate{
		ID:        row.TeamMemberID,
		Title:     row.Title,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.MobilePhone,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Company:   row.Company,
		AccountID: row.AccountID,
	}
}
