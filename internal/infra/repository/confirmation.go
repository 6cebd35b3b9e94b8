package repository

import (
	"context"

	"resource-desk/internal/domain/confirmation"
	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"
	"resource-desk/internal/pkg/pgconv"
	"resource-desk/internal/usecase/shared"
)

const findReturnForUpdateSQL = `
SELECT rn.id, rn.borrowing_id, br.borrower_id, br.equipment_id, e.name, rn.status
FROM return_notifications rn
JOIN borrowing_requests br ON br.id = rn.borrowing_id
JOIN equipment e ON e.id = br.equipment_id
WHERE rn.id = $1
FOR UPDATE OF rn`

const findDoneForUpdateSQL = `
SELECT dn.id, dn.booking_id, bk.booker_id, bk.facility_id, f.name, dn.status
FROM done_notifications dn
JOIN booking_requests bk ON bk.id = dn.booking_id
JOIN facilities f ON f.id = bk.facility_id
WHERE dn.id = $1
FOR UPDATE OF dn`

type ConfirmationRepository struct{}

func NewConfirmationRepository() *ConfirmationRepository {
	return &ConfirmationRepository{}
}

func (r *ConfirmationRepository) FindReturnForUpdate(ctx context.Context, db db.DBTX, id int64) (*shared.ConfirmationSnapshot, error) {
	return r.findForUpdate(ctx, db, findReturnForUpdateSQL, id, "return notification")
}

func (r *ConfirmationRepository) FindDoneForUpdate(ctx context.Context, db db.DBTX, id int64) (*shared.ConfirmationSnapshot, error) {
	return r.findForUpdate(ctx, db, findDoneForUpdateSQL, id, "done notification")
}

func (r *ConfirmationRepository) findForUpdate(ctx context.Context, db db.DBTX, sql string, id int64, label string) (*shared.ConfirmationSnapshot, error) {
	var (
		snap   shared.ConfirmationSnapshot
		status string
	)
	err := db.QueryRow(ctx, sql, id).Scan(
		&snap.ID, &snap.RequestID, &snap.RequesterID, &snap.ResourceID, &snap.ResourceName, &status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(label+" not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock "+label, err)
	}
	snap.Status = confirmation.Status(status)
	return &snap, nil
}

func (r *ConfirmationRepository) SetReturnStatus(ctx context.Context, db db.DBTX, id int64, status confirmation.Status) error {
	_, err := db.Exec(ctx, `UPDATE return_notifications SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update return notification status", err)
	}
	return nil
}

func (r *ConfirmationRepository) SetDoneStatus(ctx context.Context, db db.DBTX, id int64, status confirmation.Status) error {
	_, err := db.Exec(ctx, `UPDATE done_notifications SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update done notification status", err)
	}
	return nil
}

func (r *ConfirmationRepository) CreateReturn(ctx context.Context, db db.DBTX, borrowingID int64, receiverName, message string) (int64, error) {
	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO return_notifications (borrowing_id, receiver_name, message, status) VALUES ($1, $2, $3, $4) RETURNING id`,
		borrowingID, receiverName, message, string(confirmation.StatusPending),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create return notification", err)
	}
	return id, nil
}

func (r *ConfirmationRepository) CreateDone(ctx context.Context, db db.DBTX, bookingID int64, completionNotes, message string) (int64, error) {
	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO done_notifications (booking_id, completion_notes, message, status) VALUES ($1, $2, $3, $4) RETURNING id`,
		bookingID, completionNotes, message, string(confirmation.StatusPending),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create done notification", err)
	}
	return id, nil
}

func (r *ConfirmationRepository) HasPendingReturn(ctx context.Context, db db.DBTX, borrowingID int64) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM return_notifications WHERE borrowing_id = $1 AND status = $2)`,
		borrowingID, string(confirmation.StatusPending),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending return notification", err)
	}
	return exists, nil
}

func (r *ConfirmationRepository) HasPendingDone(ctx context.Context, db db.DBTX, bookingID int64) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM done_notifications WHERE booking_id = $1 AND status = $2)`,
		bookingID, string(confirmation.StatusPending),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending done notification", err)
	}
	return exists, nil
}
