package readstore

import (
	"context"

	"resource-desk/internal/infra"
	"resource-desk/internal/infra/db"
	"resource-desk/internal/pkg/pgconv"
	"resource-desk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const listBookingSQL = `
SELECT bk.id, bk.booker_id,
       u.first_name || ' ' || u.last_name AS booker_name,
       u.email AS booker_email,
       u.department,
       bk.facility_id, f.name AS facility_name,
       bk.purpose, bk.status,
       bk.start_date, bk.end_date, bk.created_at
FROM booking_requests bk
JOIN users u ON u.id = bk.booker_id
JOIN facilities f ON f.id = bk.facility_id
WHERE ($1::text IS NULL OR bk.status = $1)
  AND ($2::bigint IS NULL OR bk.booker_id = $2)
ORDER BY bk.created_at DESC, bk.id DESC
LIMIT $3 OFFSET $4`

const countBookingSQL = `
SELECT COUNT(*)
FROM booking_requests bk
WHERE ($1::text IS NULL OR bk.status = $1)
  AND ($2::bigint IS NULL OR bk.booker_id = $2)`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) List(ctx context.Context, p queries.ListParams) ([]queries.BookingRequestView, int64, error) {
	return r.list(ctx, p, nil)
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID int64, p queries.ListParams) ([]queries.BookingRequestView, int64, error) {
	return r.list(ctx, p, &userID)
}

func (r *BookingReadStore) list(ctx context.Context, p queries.ListParams, userID *int64) ([]queries.BookingRequestView, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, countBookingSQL, p.Status, userID).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count booking requests", err)
	}

	rows, err := r.db.Query(ctx, listBookingSQL, p.Status, userID, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list booking requests", err)
	}
	defer rows.Close()

	items := make([]queries.BookingRequestView, 0)
	for rows.Next() {
		var (
			v          queries.BookingRequestView
			department pgtype.Text
			purpose    pgtype.Text
			startDate  pgtype.Timestamptz
			endDate    pgtype.Timestamptz
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&v.ID, &v.BookerID, &v.BookerName, &v.BookerEmail, &department,
			&v.FacilityID, &v.FacilityName, &purpose, &v.Status,
			&startDate, &endDate, &createdAt,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan booking request row", err)
		}
		v.Department = pgconv.StringPtrFromPgtype(department)
		v.Purpose = pgconv.StringPtrFromPgtype(purpose)
		v.StartDate = pgconv.TimeFromPgtype(startDate)
		v.EndDate = pgconv.TimeFromPgtype(endDate)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read booking request rows", err)
	}
	return items, total, nil
}
