package repository

import (
	"context"

	"resource-desk/internal/domain/request"
	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"
	"resource-desk/internal/pkg/pgconv"
	"resource-desk/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const findBookingForUpdateSQL = `
SELECT bk.id, bk.booker_id, bk.facility_id, f.name, bk.status
FROM booking_requests bk
JOIN facilities f ON f.id = bk.facility_id
WHERE bk.id = $1
FOR UPDATE OF bk`

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, db db.DBTX, id int64) (*shared.RequestSnapshot, error) {
	var (
		snap   shared.RequestSnapshot
		status string
	)
	err := db.QueryRow(ctx, findBookingForUpdateSQL, id).Scan(
		&snap.ID, &snap.RequesterID, &snap.ResourceID, &snap.ResourceName, &status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking request", err)
	}
	snap.Status = request.Status(status)
	return &snap, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, db db.DBTX, id int64, status request.Status) error {
	_, err := db.Exec(ctx, `UPDATE booking_requests SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking request status", err)
	}
	return nil
}

func (r *BookingRepository) DeleteConfirmations(ctx context.Context, db db.DBTX, id int64) error {
	_, err := db.Exec(ctx, `DELETE FROM done_notifications WHERE booking_id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete done notifications for booking request", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, db db.DBTX, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM booking_requests WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking request not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
