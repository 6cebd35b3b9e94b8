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

const findAcquiringForUpdateSQL = `
SELECT aq.id, aq.acquirer_id, aq.supply_id, s.name, aq.quantity, aq.status
FROM acquiring_requests aq
JOIN supplies s ON s.id = aq.supply_id
WHERE aq.id = $1
FOR UPDATE OF aq`

type AcquiringRepository struct{}

func NewAcquiringRepository() *AcquiringRepository {
	return &AcquiringRepository{}
}

func (r *AcquiringRepository) FindForUpdate(ctx context.Context, db db.DBTX, id int64) (*shared.RequestSnapshot, error) {
	var (
		snap   shared.RequestSnapshot
		status string
	)
	err := db.QueryRow(ctx, findAcquiringForUpdateSQL, id).Scan(
		&snap.ID, &snap.RequesterID, &snap.ResourceID, &snap.ResourceName, &snap.Quantity, &status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("acquiring request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock acquiring request", err)
	}
	snap.Status = request.Status(status)
	return &snap, nil
}

func (r *AcquiringRepository) UpdateStatus(ctx context.Context, db db.DBTX, id int64, status request.Status) error {
	_, err := db.Exec(ctx, `UPDATE acquiring_requests SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update acquiring request status", err)
	}
	return nil
}

// DeleteConfirmations is a no-op: acquiring requests carry no confirmation rows.
func (r *AcquiringRepository) DeleteConfirmations(ctx context.Context, db db.DBTX, id int64) error {
	return nil
}

func (r *AcquiringRepository) Delete(ctx context.Context, db db.DBTX, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM acquiring_requests WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete acquiring request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("acquiring request not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
