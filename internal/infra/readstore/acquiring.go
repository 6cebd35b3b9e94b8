package readstore

import (
	"context"

	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"
	"resource-desk/internal/pkg/pgconv"
	"resource-desk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const listAcquiringSQL = `
SELECT aq.id, aq.acquirer_id,
       u.first_name || ' ' || u.last_name AS acquirer_name,
       u.email AS acquirer_email,
       u.department,
       aq.supply_id, s.name AS supply_name,
       aq.quantity, aq.purpose, aq.status, aq.created_at
FROM acquiring_requests aq
JOIN users u ON u.id = aq.acquirer_id
JOIN supplies s ON s.id = aq.supply_id
WHERE ($1::text IS NULL OR aq.status = $1)
  AND ($2::bigint IS NULL OR aq.acquirer_id = $2)
ORDER BY aq.created_at DESC, aq.id DESC
LIMIT $3 OFFSET $4`

const countAcquiringSQL = `
SELECT COUNT(*)
FROM acquiring_requests aq
WHERE ($1::text IS NULL OR aq.status = $1)
  AND ($2::bigint IS NULL OR aq.acquirer_id = $2)`

type AcquiringReadStore struct {
	db db.DBTX
}

func NewAcquiringReadStore(db db.DBTX) *AcquiringReadStore {
	return &AcquiringReadStore{db: db}
}

func (r *AcquiringReadStore) List(ctx context.Context, p queries.ListParams) ([]queries.AcquiringRequestView, int64, error) {
	return r.list(ctx, p, nil)
}

func (r *AcquiringReadStore) ListByUser(ctx context.Context, userID int64, p queries.ListParams) ([]queries.AcquiringRequestView, int64, error) {
	return r.list(ctx, p, &userID)
}

func (r *AcquiringReadStore) list(ctx context.Context, p queries.ListParams, userID *int64) ([]queries.AcquiringRequestView, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, countAcquiringSQL, p.Status, userID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count acquiring requests", err)
	}

	rows, err := r.db.Query(ctx, listAcquiringSQL, p.Status, userID, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list acquiring requests", err)
	}
	defer rows.Close()

	items := make([]queries.AcquiringRequestView, 0)
	for rows.Next() {
		var (
			v          queries.AcquiringRequestView
			department pgtype.Text
			purpose    pgtype.Text
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&v.ID, &v.AcquirerID, &v.AcquirerName, &v.AcquirerEmail, &department,
			&v.SupplyID, &v.SupplyName, &v.Quantity, &purpose, &v.Status, &createdAt,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan acquiring request row", err)
		}
		v.Department = pgconv.StringPtrFromPgtype(department)
		v.Purpose = pgconv.StringPtrFromPgtype(purpose)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read acquiring request rows", err)
	}
	return items, total, nil
}
