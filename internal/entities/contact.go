// Package entities contains core business entities.
package entities

// AccountTeamMember is one row of the team-member lookup: the team member
// projection joined with the account its plan references. Nullable columns
// are pointers.
type AccountTeamMember struct {
	TeamMemberID string
	Name         *string
	Email        *string
	MobilePhone  *string
	FirstName    *string
	LastName     *string
	ManagerID    *string
	Company      *string
	Title        *string
	AccountID    string
}

// ContactCandidate is the resolved point of contact for a territory query.
type ContactCandidate struct {
	ID        string
	Title     *string
	Name      *string
	Email     *string
	Phone     *string
	FirstName *string
	LastName  *string
	Company   *string
	AccountID string
}
