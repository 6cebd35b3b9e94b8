//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext behind TestPasswordHash; every seeded account
// logs in with it.
const (
	TestPassword     = "password123"
	TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (email, hashed_password, first_name, last_name, department, role, status)
		VALUES ($1, $2, 'Test', 'User', 'General Services', $3, 'Approved')
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`,
		email, TestPasswordHash, role).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateEquipment(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO equipment (name, category, brand_name, availability)
		VALUES ($1, 'General', 'Generic', 'Available')
		RETURNING id`, name).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateFacility(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO facilities (name, location, capacity)
		VALUES ($1, 'Main Building', 20)
		RETURNING id`, name).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateSupply(t *testing.T, db DBLike, name string, quantity int32) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO supplies (name, quantity)
		VALUES ($1, $2)
		RETURNING id`, name, quantity).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateBorrowingRequest(t *testing.T, db DBLike, borrowerID, equipmentID int64, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO borrowing_requests (borrower_id, equipment_id, purpose, status, start_date, end_date)
		VALUES ($1, $2, 'Field survey', $3, now(), now() + interval '3 days')
		RETURNING id`, borrowerID, equipmentID, status).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateBookingRequest(t *testing.T, db DBLike, bookerID, facilityID int64, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO booking_requests (booker_id, facility_id, purpose, status, start_date, end_date)
		VALUES ($1, $2, 'Team meeting', $3, now(), now() + interval '2 hours')
		RETURNING id`, bookerID, facilityID, status).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateAcquiringRequest(t *testing.T, db DBLike, acquirerID, supplyID int64, quantity int32, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO acquiring_requests (acquirer_id, supply_id, quantity, purpose, status)
		VALUES ($1, $2, $3, 'Office restock', $4)
		RETURNING id`, acquirerID, supplyID, quantity, status).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateReturnNotification(t *testing.T, db DBLike, borrowingID int64, receiverName string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO return_notifications (borrowing_id, receiver_name, message)
		VALUES ($1, $2, 'Equipment returned by Test User')
		RETURNING id`, borrowingID, receiverName).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateUserNotification(t *testing.T, db DBLike, userID int64, title string, isRead bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO user_notifications (user_id, title, message, type, is_read)
		VALUES ($1, $2, 'Notification body', 'info', $3)
		RETURNING id`, userID, title, isRead).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateDoneNotification(t *testing.T, db DBLike, bookingID int64, completionNotes string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO done_notifications (booking_id, completion_notes, message)
		VALUES ($1, $2, 'Booking completed by Test User')
		RETURNING id`, bookingID, completionNotes).Scan(&id)
	require.NoError(t, err)

	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Standing accounts every suite can log in with
	_, err := pool.Exec(ctx, `
		INSERT INTO users (email, hashed_password, first_name, last_name, department, role, status) VALUES
		    ('admin@example.com', '`+TestPasswordHash+`', 'Admin', 'User', 'Admin Office', 'admin', 'Approved'),
		    ('staff@example.com', '`+TestPasswordHash+`', 'Staff', 'User', 'General Services', 'staff', 'Approved')
		ON CONFLICT (email) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	// Resource catalog for list endpoints to join against
	_, err = pool.Exec(ctx, `
		INSERT INTO equipment (name, category, brand_name, availability)
		SELECT 'Latitude 5420', 'Laptop', 'Dell', 'Available'
		WHERE NOT EXISTS (SELECT 1 FROM equipment WHERE name = 'Latitude 5420');

		INSERT INTO facilities (name, location, capacity)
		SELECT 'Conference Room A', '2F Main Building', 12
		WHERE NOT EXISTS (SELECT 1 FROM facilities WHERE name = 'Conference Room A');

		INSERT INTO supplies (name, quantity)
		SELECT 'A4 Bond Paper', 120
		WHERE NOT EXISTS (SELECT 1 FROM supplies WHERE name = 'A4 Bond Paper');
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
