package readstore

import (
	"context"

	"resource-desk/internal/domain/confirmation"
	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"
	"resource-desk/internal/pkg/pgconv"
	"resource-desk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// Pending hand-offs are a work queue for admins, so oldest first.
const listPendingReturnsSQL = `
SELECT rn.id, rn.borrowing_id, e.name AS equipment_name,
       u.first_name || ' ' || u.last_name AS borrower_name,
       u.email AS borrower_email,
       rn.receiver_name, rn.message, rn.status, rn.created_at
FROM return_notifications rn
JOIN borrowing_requests br ON br.id = rn.borrowing_id
JOIN equipment e ON e.id = br.equipment_id
JOIN users u ON u.id = br.borrower_id
WHERE rn.status = $1
ORDER BY rn.created_at ASC, rn.id ASC`

const listPendingDonesSQL = `
SELECT dn.id, dn.booking_id, f.name AS facility_name,
       u.first_name || ' ' || u.last_name AS booker_name,
       u.email AS booker_email,
       dn.completion_notes, dn.message, dn.status, dn.created_at
FROM done_notifications dn
JOIN booking_requests bk ON bk.id = dn.booking_id
JOIN facilities f ON f.id = bk.facility_id
JOIN users u ON u.id = bk.booker_id
WHERE dn.status = $1
ORDER BY dn.created_at ASC, dn.id ASC`

type ConfirmationReadStore struct {
	db db.DBTX
}

func NewConfirmationReadStore(db db.DBTX) *ConfirmationReadStore {
	return &ConfirmationReadStore{db: db}
}

func (r *ConfirmationReadStore) ListPendingReturns(ctx context.Context) ([]queries.ReturnNotificationView, error) {
	rows, err := r.db.Query(ctx, listPendingReturnsSQL, string(confirmation.StatusPending))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending return notifications", err)
	}
	defer rows.Close()

	items := make([]queries.ReturnNotificationView, 0)
	for rows.Next() {
		var (
			v         queries.ReturnNotificationView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&v.ID, &v.BorrowingID, &v.EquipmentName, &v.BorrowerName, &v.BorrowerEmail,
			&v.ReceiverName, &v.Message, &v.Status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan return notification row", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read return notification rows", err)
	}
	return items, nil
}

func (r *ConfirmationReadStore) ListPendingDones(ctx context.Context) ([]queries.DoneNotificationView, error) {
	rows, err := r.db.Query(ctx, listPendingDonesSQL, string(confirmation.StatusPending))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending done notifications", err)
	}
	defer rows.Close()

	items := make([]queries.DoneNotificationView, 0)
	for rows.Next() {
		var (
			v               queries.DoneNotificationView
			completionNotes pgtype.Text
			createdAt       pgtype.Timestamptz
		)
		if err := rows.Scan(
			&v.ID, &v.BookingID, &v.FacilityName, &v.BookerName, &v.BookerEmail,
			&completionNotes, &v.Message, &v.Status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan done notification row", err)
		}
		v.CompletionNotes = pgconv.StringPtrFromPgtype(completionNotes)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read done notification rows", err)
	}
	return items, nil
}
