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

type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

func (r *InventoryRepository) SetEquipmentAvailability(ctx context.Context, db db.DBTX, equipmentID int64, availability request.Availability) error {
	tag, err := db.Exec(ctx, `UPDATE equipment SET availability = $2 WHERE id = $1`, equipmentID, string(availability))
	if err != nil {
		return infra.WrapRepoErr("failed to update equipment availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *InventoryRepository) SupplyForUpdate(ctx context.Context, db db.DBTX, supplyID int64) (*shared.SupplySnapshot, error) {
	var snap shared.SupplySnapshot
	err := db.QueryRow(ctx, `SELECT id, name, quantity FROM supplies WHERE id = $1 FOR UPDATE`, supplyID).
		Scan(&snap.ID, &snap.Name, &snap.Quantity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("supply not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock supply", err)
	}
	return &snap, nil
}

func (r *InventoryRepository) DeductSupply(ctx context.Context, db db.DBTX, supplyID int64, quantity int32) error {
	_, err := db.Exec(ctx, `UPDATE supplies SET quantity = quantity - $2 WHERE id = $1`, supplyID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to deduct supply quantity", err)
	}
	return nil
}
