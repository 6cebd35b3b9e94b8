package repository

import (
	"context"

	"resource-desk/internal/domain/audit"
	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"
	"resource-desk/internal/pkg/errs"
)

type AuditLogRepository struct{}

func NewAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{}
}

func (r *AuditLogRepository) Append(ctx context.Context, db db.DBTX, sink audit.Sink, resourceID int64, action audit.Action, details, performedBy string) error {
	var sql string
	switch sink {
	case audit.SinkEquipment:
		sql = `INSERT INTO equipment_logs (equipment_id, action, details, performed_by) VALUES ($1, $2, $3, $4)`
	case audit.SinkFacility:
		sql = `INSERT INTO facility_logs (facility_id, action, details, performed_by) VALUES ($1, $2, $3, $4)`
	case audit.SinkSupply:
		sql = `INSERT INTO supply_logs (supply_id, action, details, performed_by) VALUES ($1, $2, $3, $4)`
	default:
		return errs.New("unknown audit sink: " + string(sink))
	}

	_, err := db.Exec(ctx, sql, resourceID, string(action), details, performedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit log", err)
	}
	return nil
}
