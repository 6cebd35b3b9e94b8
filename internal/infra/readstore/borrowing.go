package readstore

import (
	"context"

	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"
	"resource-desk/internal/pkg/pgconv"
	"resource-desk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const listBorrowingSQL = `
SELECT br.id, br.borrower_id,
       u.first_name || ' ' || u.last_name AS borrower_name,
       u.email AS borrower_email,
       u.department,
       br.equipment_id, e.name AS equipment_name,
       br.purpose, br.status, br.return_status,
       br.start_date, br.end_date, br.created_at,
       rn.id, rn.receiver_name, rn.status
FROM borrowing_requests br
JOIN users u ON u.id = br.borrower_id
JOIN equipment e ON e.id = br.equipment_id
LEFT JOIN LATERAL (
    SELECT id, receiver_name, status
    FROM return_notifications
    WHERE borrowing_id = br.id AND status = 'pending_confirmation'
    ORDER BY created_at DESC, id DESC
    LIMIT 1
) rn ON true
WHERE ($1::text IS NULL OR br.status = $1)
  AND ($2::bigint IS NULL OR br.borrower_id = $2)
ORDER BY br.created_at DESC, br.id DESC
LIMIT $3 OFFSET $4`

const countBorrowingSQL = `
SELECT COUNT(*)
FROM borrowing_requests br
WHERE ($1::text IS NULL OR br.status = $1)
  AND ($2::bigint IS NULL OR br.borrower_id = $2)`

type BorrowingReadStore struct {
	db db.DBTX
}

func NewBorrowingReadStore(db db.DBTX) *BorrowingReadStore {
	return &BorrowingReadStore{db: db}
}

func (r *BorrowingReadStore) List(ctx context.Context, p queries.ListParams) ([]queries.BorrowingRequestView, int64, error) {
	return r.list(ctx, p, nil)
}

func (r *BorrowingReadStore) ListByUser(ctx context.Context, userID int64, p queries.ListParams) ([]queries.BorrowingRequestView, int64, error) {
	return r.list(ctx, p, &userID)
}

func (r *BorrowingReadStore) list(ctx context.Context, p queries.ListParams, userID *int64) ([]queries.BorrowingRequestView, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, countBorrowingSQL, p.Status, userID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count borrowing requests", err)
	}

	rows, err := r.db.Query(ctx, listBorrowingSQL, p.Status, userID, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list borrowing requests", err)
	}
	defer rows.Close()

	items := make([]queries.BorrowingRequestView, 0)
	for rows.Next() {
		var (
			v            queries.BorrowingRequestView
			department   pgtype.Text
			purpose      pgtype.Text
			returnStatus pgtype.Text
			startDate    pgtype.Timestamptz
			endDate      pgtype.Timestamptz
			createdAt    pgtype.Timestamptz
			rnID         pgtype.Int8
			rnReceiver   pgtype.Text
			rnStatus     pgtype.Text
		)
		if err := rows.Scan(
			&v.ID, &v.BorrowerID, &v.BorrowerName, &v.BorrowerEmail, &department,
			&v.EquipmentID, &v.EquipmentName, &purpose, &v.Status, &returnStatus,
			&startDate, &endDate, &createdAt,
			&rnID, &rnReceiver, &rnStatus,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan borrowing request row", err)
		}
		v.Department = pgconv.StringPtrFromPgtype(department)
		v.Purpose = pgconv.StringPtrFromPgtype(purpose)
		v.ReturnStatus = pgconv.StringPtrFromPgtype(returnStatus)
		v.StartDate = pgconv.TimeFromPgtype(startDate)
		v.EndDate = pgconv.TimeFromPgtype(endDate)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		if rnID.Valid {
			v.ReturnNotification = &queries.ActiveReturnView{
				ID:           rnID.Int64,
				ReceiverName: rnReceiver.String,
				Status:       rnStatus.String,
			}
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read borrowing request rows", err)
	}
	return items, total, nil
}
