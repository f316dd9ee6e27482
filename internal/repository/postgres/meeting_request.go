package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/NataIS0203/vdk-wonder-drugs-hcp/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const insertMeetingRequestQuery = `
INSERT INTO meeting_requests(
    id, assignee_id, account_id, duration, external_id,
    invitee_locale, invitee_display_name, invitee_email, phone, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
RETURNING created_at`

// CreateMeetingRequest inserts one meeting request inside a transaction.
// The creation timestamp is set by the database, never by the caller. Any
// row-level failure rolls the transaction back and surfaces as
// entities.ErrWriteAborted.
func (p *Postgres) CreateMeetingRequest(ctx context.Context, mr entities.MeetingRequest) (*entities.MeetingRequest, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	mr.ID = uuid.NewString()
	err = tx.QueryRow(ctx, insertMeetingRequestQuery,
		mr.ID, mr.AssigneeID, mr.AccountID, mr.Duration, mr.ExternalID,
		mr.InviteeLocale, mr.InviteeName, mr.InviteeEmail, mr.Phone,
	).Scan(&mr.CreatedAt)
	if err != nil {
		p.log.Errorw("failed to insert meeting request", "error", err, "account_id", mr.AccountID)
		return nil, abortError(recordName(mr), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, abortError(recordName(mr), err)
	}

	p.log.Infow("meeting request created", "meeting_request_id", mr.ID, "account_id", mr.AccountID)
	return &mr, nil
}

func abortError(name string, err error) error {
	msg := err.Error()
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		msg = pgErr.Message
	}
	return fmt.Errorf("%w: unable to create %q because of %s", entities.ErrWriteAborted, name, msg)
}

// recordName picks a human-readable name for abort messages.
func recordName(mr entities.MeetingRequest) string {
	if mr.InviteeName != nil && *mr.InviteeName != "" {
		return *mr.InviteeName
	}
	if mr.ExternalID != nil && *mr.ExternalID != "" {
		return *mr.ExternalID
	}
	return mr.AccountID
}
