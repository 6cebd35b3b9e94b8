package repository

import (
	"context"

	"resource-desk/internal/domain/request"
	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"
	"resource-desk/internal/pkg/pgconv"
	"resource-desk/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const findBorrowingForUpdateSQL = `
SELECT br.id, br.borrower_id, br.equipment_id, e.name, br.status, br.return_status
FROM borrowing_requests br
JOIN equipment e ON e.id = br.equipment_id
WHERE br.id = $1
FOR UPDATE OF br`

type BorrowingRepository struct{}

func NewBorrowingRepository() *BorrowingRepository {
	return &BorrowingRepository{}
}

func (r *BorrowingRepository) FindForUpdate(ctx context.Context, db db.DBTX, id int64) (*shared.RequestSnapshot, error) {
	var (
		snap         shared.RequestSnapshot
		status       string
		returnStatus pgtype.Text
	)
	err := db.QueryRow(ctx, findBorrowingForUpdateSQL, id).Scan(
		&snap.ID, &snap.RequesterID, &snap.ResourceID, &snap.ResourceName, &status, &returnStatus,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("borrowing request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock borrowing request", err)
	}
	snap.Status = request.Status(status)
	snap.ReturnStatus = pgconv.StringPtrFromPgtype(returnStatus)
	return &snap, nil
}

func (r *BorrowingRepository) UpdateStatus(ctx context.Context, db db.DBTX, id int64, status request.Status) error {
	_, err := db.Exec(ctx, `UPDATE borrowing_requests SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update borrowing request status", err)
	}
	return nil
}

func (r *BorrowingRepository) SetReturnStatus(ctx context.Context, db db.DBTX, id int64, returnStatus string) error {
	_, err := db.Exec(ctx, `UPDATE borrowing_requests SET return_status = $2 WHERE id = $1`, id, returnStatus)
	if err != nil {
		return infra.WrapRepoErr("failed to update borrowing return status", err)
	}
	return nil
}

func (r *BorrowingRepository) DeleteConfirmations(ctx context.Context, db db.DBTX, id int64) error {
	_, err := db.Exec(ctx, `DELETE FROM return_notifications WHERE borrowing_id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete return notifications for borrowing request", err)
	}
	return nil
}

func (r *BorrowingRepository) Delete(ctx context.Context, db db.DBTX, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM borrowing_requests WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete borrowing request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("borrowing request not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
