package postgres

import (
	"context"
	"fmt"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/entities"
)

const (
	accountsByTerritoryQuery = `
SELECT a.id
FROM accounts a
WHERE a.id IN (SELECT ad.account_id FROM addresses ad WHERE ad.postal_code = $1)
  AND (a.group_specialty_1 = $2 OR a.group_specialty_2 = $2)`

	teamMembersByAccountsQuery = `
SELECT tm.id, tm.name, tm.email, tm.mobile_phone, tm.first_name, tm.last_name,
       tm.manager_id, tm.company, tm.title, ap.account_id
FROM account_team_members atm
JOIN account_plans ap ON ap.id = atm.account_plan_id
JOIN team_members tm ON tm.id = atm.team_member_id
WHERE ap.account_id = ANY($1::text[])
ORDER BY atm.id`
)

// AccountIDsByTerritory returns ids of accounts whose address matches the
// postal code and whose primary or secondary specialty matches.
func (p *Postgres) AccountIDsByTerritory(ctx context.Context, zip, groupSpecialty string) ([]string, error) {
	rows, err := p.db.Query(ctx, accountsByTerritoryQuery, zip, groupSpecialty)
	if err != nil {
		return nil, fmt.Errorf("query accounts by territory: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			p.log.Errorw("failed to scan account id", "error", err, "zip", zip)
			return nil, fmt.Errorf("scan account id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate accounts", "error", err, "zip", zip)
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return ids, nil
}

// TeamMembersByAccounts returns team members engaged with any of the given
// accounts through an account plan, in query order.
func (p *Postgres) TeamMembersByAccounts(ctx context.Context, accountIDs []string) ([]entities.AccountTeamMember, error) {
	rows, err := p.db.Query(ctx, teamMembersByAccountsQuery, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("query account team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.AccountTeamMember, 0)
	for rows.Next() {
		var m entities.AccountTeamMember
		if err := rows.Scan(&m.TeamMemberID, &m.Name, &m.Email, &m.MobilePhone,
			&m.FirstName, &m.LastName, &m.ManagerID, &m.Company, &m.Title, &m.AccountID); err != nil {
			p.log.Errorw("failed to scan account team member", "error", err)
			return nil, fmt.Errorf("scan account team member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate account team members", "error", err)
		return nil, fmt.Errorf("iterate account team members: %w", err)
	}

	return members, nil
}
