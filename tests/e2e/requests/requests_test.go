//go:build e2e

package requests_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"resource-desk/internal/handler/dto/request"
	"resource-desk/internal/handler/dto/response"
	"resource-desk/tests/common/authtest"
	"resource-desk/tests/common/dbtest"
	"resource-desk/tests/common/httptest"
	"resource-desk/tests/e2e"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	borrowingRequestsURL = "/api/borrowing/requests"
	borrowingStatusURL   = "/api/borrowing/bulk-update-status"
	borrowingDeleteURL   = "/api/borrowing/bulk-delete"
	bookingStatusURL     = "/api/booking/bulk-update-status"
	bookingDeleteURL     = "/api/booking/bulk-delete"
	acquiringStatusURL   = "/api/acquiring/bulk-update-status"
)

type RequestsSuite struct {
	e2e.SharedSuite
}

func (s *RequestsSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRequestsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RequestsSuite))
}

func (s *RequestsSuite) adminToken(t *testing.T) string {
	t.Helper()
	return authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.TestPassword)
}

// =============================================================================
// TestListBorrowingRequests - Admin borrowing list API tests
// =============================================================================

func (s *RequestsSuite) TestListBorrowingRequests() {
	s.Run("Normal case: Rows come back newest first with page meta", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		r1 := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")
		r2 := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Approved")
		r3 := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, borrowingRequestsURL, nil, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.BorrowingRequestListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Len(t, res.Data, 3)
		require.Equal(t, int64(3), res.Total)
		require.Equal(t, int32(1), res.Page)
		require.Equal(t, int32(1), res.TotalPages)

		require.Equal(t, []int64{r3, r2, r1}, []int64{res.Data[0].ID, res.Data[1].ID, res.Data[2].ID},
			"Should be ordered newest first")

		first := res.Data[0]
		require.Equal(t, borrowerID, first.BorrowerID)
		require.Equal(t, "Test User", first.BorrowerName)
		require.Equal(t, "borrower@example.com", first.BorrowerEmail)
		require.Equal(t, "Projector X200", first.EquipmentName)
		require.Equal(t, "Pending", first.Status)
		require.Nil(t, first.ReturnNotification, "No hand-off in flight")
	})

	s.Run("Normal case: Status filter narrows the list", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")
		dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Approved")
		dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, borrowingRequestsURL+"?status=Pending", nil, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var res response.BorrowingRequestListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Len(t, res.Data, 2)
		require.Equal(t, int64(2), res.Total)
		for _, item := range res.Data {
			require.Equal(t, "Pending", item.Status)
		}
	})

	s.Run("Normal case: Pagination splits across pages", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		for range 12 {
			dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, borrowingRequestsURL+"?page=2&page_size=5", nil, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var res response.BorrowingRequestListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Len(t, res.Data, 5)
		require.Equal(t, int64(12), res.Total)
		require.Equal(t, int32(2), res.Page)
		require.Equal(t, int32(3), res.TotalPages)
	})

	s.Run("Normal case: Pending return hand-off rides on the row", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		plain := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")
		reported := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Approved")
		noticeID := dbtest.CreateReturnNotification(t, s.DB, reported, "Front Desk")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, borrowingRequestsURL, nil, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var res response.BorrowingRequestListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Len(t, res.Data, 2)

		for _, item := range res.Data {
			switch item.ID {
			case reported:
				require.NotNil(t, item.ReturnNotification)
				require.Equal(t, noticeID, item.ReturnNotification.ID)
				require.Equal(t, "Front Desk", item.ReturnNotification.ReceiverName)
				require.Equal(t, "pending_confirmation", item.ReturnNotification.Status)
			case plain:
				require.Nil(t, item.ReturnNotification)
			}
		}
	})

	s.Run("Error case: Invalid status filter returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, borrowingRequestsURL+"?status=InProgress", nil, s.adminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("Auth test - Staff role cannot list all requests", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "staff@example.com", dbtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, borrowingRequestsURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestBulkUpdateBorrowingStatus - Borrowing decision API tests
// =============================================================================

func (s *RequestsSuite) TestBulkUpdateBorrowingStatus() {
	s.Run("Normal case: Approval updates the row, equipment and notifications", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		requestID := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")

		body := request.BulkUpdateStatusRequest{IDs: []int64{requestID}, Status: "Approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, borrowingStatusURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.BulkUpdateResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.True(t, res.Success)
		require.Equal(t, 1, res.UpdatedCount)
		require.Equal(t, "Successfully approved 1 borrowing requests", res.Message)
		require.Empty(t, res.Failed)

		require.Equal(t, "Approved", queryString(t, s.DB, `SELECT status FROM borrowing_requests WHERE id = $1`, requestID))
		require.Equal(t, "Borrowed", queryString(t, s.DB, `SELECT availability FROM equipment WHERE id = $1`, equipmentID))

		title, message, typ := latestUserNotification(t, s.DB, borrowerID)
		require.Equal(t, "Borrowing Request Approved", title)
		require.Equal(t, "Your borrowing request for equipment has been approved.", message)
		require.Equal(t, "info", typ)

		action, details, performedBy := latestAuditEntry(t, s.DB, "equipment_logs", "equipment_id", equipmentID)
		require.Equal(t, "approved", action)
		require.Equal(t, fmt.Sprintf("Borrowing request ID %d approved for Projector X200", requestID), details)
		require.Equal(t, "admin@example.com", performedBy)
	})

	s.Run("Normal case: Rejection leaves the equipment available", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		requestID := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")

		body := request.BulkUpdateStatusRequest{IDs: []int64{requestID}, Status: "Rejected"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, borrowingStatusURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var res response.BulkUpdateResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Equal(t, "Successfully rejected 1 borrowing requests", res.Message)

		require.Equal(t, "Rejected", queryString(t, s.DB, `SELECT status FROM borrowing_requests WHERE id = $1`, requestID))
		require.Equal(t, "Available", queryString(t, s.DB, `SELECT availability FROM equipment WHERE id = $1`, equipmentID))

		title, message, typ := latestUserNotification(t, s.DB, borrowerID)
		require.Equal(t, "Borrowing Request Rejected", title)
		require.Equal(t, "Your borrowing request for equipment has been rejected.", message)
		require.Equal(t, "warning", typ)

		action, _, _ := latestAuditEntry(t, s.DB, "equipment_logs", "equipment_id", equipmentID)
		require.Equal(t, "rejected", action)
	})

	s.Run("Normal case: Mixed batch skips decided rows and reports them", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		pending := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")
		decided := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Approved")

		body := request.BulkUpdateStatusRequest{IDs: []int64{pending, decided}, Status: "Approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, borrowingStatusURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var res response.BulkUpdateResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Equal(t, 1, res.UpdatedCount)
		require.Len(t, res.Failed, 1)
		require.Equal(t, decided, res.Failed[0].ID)
		require.Equal(t, "already decided", res.Failed[0].Reason)

		require.Equal(t, "Approved", queryString(t, s.DB, `SELECT status FROM borrowing_requests WHERE id = $1`, pending))
	})

	s.Run("Error case: Missing id alone returns 404", func() {
		t := s.T()

		body := request.BulkUpdateStatusRequest{IDs: []int64{99999}, Status: "Approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, borrowingStatusURL, body, s.adminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Borrowing request not found")
	})

	s.Run("Error case: Already decided id alone returns 409", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		decided := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Rejected")

		body := request.BulkUpdateStatusRequest{IDs: []int64{decided}, Status: "Approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, borrowingStatusURL, body, s.adminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Request already processed")
	})

	s.Run("Error case: Empty ids returns 400", func() {
		t := s.T()

		body := request.BulkUpdateStatusRequest{IDs: []int64{}, Status: "Approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, borrowingStatusURL, body, s.adminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "No IDs provided")
	})

	s.Run("Error case: Unknown decision verb returns 400", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		requestID := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")

		body := request.BulkUpdateStatusRequest{IDs: []int64{requestID}, Status: "Completed"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, borrowingStatusURL, body, s.adminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Status must be 'Approved' or 'Rejected'")

		require.Equal(t, "Pending", queryString(t, s.DB, `SELECT status FROM borrowing_requests WHERE id = $1`, requestID))
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		body := request.BulkUpdateStatusRequest{IDs: []int64{1}, Status: "Approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, borrowingStatusURL, body, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestBulkUpdateBookingStatus - Booking decision API tests
// =============================================================================

func (s *RequestsSuite) TestBulkUpdateBookingStatus() {
	s.Run("Normal case: Approval carries no resource side effects", func() {
		t := s.T()

		bookerID := dbtest.CreateTestUser(t, s.DB, "booker@example.com", "staff")
		facilityID := dbtest.CreateFacility(t, s.DB, "Training Room B")
		requestID := dbtest.CreateBookingRequest(t, s.DB, bookerID, facilityID, "Pending")

		body := request.BulkUpdateStatusRequest{IDs: []int64{requestID}, Status: "Approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingStatusURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.BulkUpdateResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Equal(t, "Successfully approved 1 booking requests", res.Message)

		require.Equal(t, "Approved", queryString(t, s.DB, `SELECT status FROM booking_requests WHERE id = $1`, requestID))

		title, message, typ := latestUserNotification(t, s.DB, bookerID)
		require.Equal(t, "Booking Request Approved", title)
		require.Equal(t, "Your facility booking request has been approved.", message)
		require.Equal(t, "info", typ)

		action, details, performedBy := latestAuditEntry(t, s.DB, "facility_logs", "facility_id", facilityID)
		require.Equal(t, "approved", action)
		require.Equal(t, fmt.Sprintf("Booking request ID %d approved", requestID), details)
		require.Equal(t, "admin@example.com", performedBy)
	})

	s.Run("Normal case: Rejection notifies the booker", func() {
		t := s.T()

		bookerID := dbtest.CreateTestUser(t, s.DB, "booker@example.com", "staff")
		facilityID := dbtest.CreateFacility(t, s.DB, "Training Room B")
		requestID := dbtest.CreateBookingRequest(t, s.DB, bookerID, facilityID, "Pending")

		body := request.BulkUpdateStatusRequest{IDs: []int64{requestID}, Status: "Rejected"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, bookingStatusURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		require.Equal(t, "Rejected", queryString(t, s.DB, `SELECT status FROM booking_requests WHERE id = $1`, requestID))

		title, message, typ := latestUserNotification(t, s.DB, bookerID)
		require.Equal(t, "Booking Request Rejected", title)
		require.Equal(t, "Your facility booking request has been rejected.", message)
		require.Equal(t, "warning", typ)
	})
}

// =============================================================================
// TestBulkUpdateAcquiringStatus - Supply decision API tests (inventory guard)
// =============================================================================

func (s *RequestsSuite) TestBulkUpdateAcquiringStatus() {
	s.Run("Normal case: Approval deducts the requested quantity", func() {
		t := s.T()

		acquirerID := dbtest.CreateTestUser(t, s.DB, "acquirer@example.com", "staff")
		supplyID := dbtest.CreateSupply(t, s.DB, "Toner Cartridge", 10)
		requestID := dbtest.CreateAcquiringRequest(t, s.DB, acquirerID, supplyID, 4, "Pending")

		body := request.BulkUpdateStatusRequest{IDs: []int64{requestID}, Status: "Approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, acquiringStatusURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.BulkUpdateResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Equal(t, "Successfully approved 1 acquiring requests", res.Message)

		require.Equal(t, "Approved", queryString(t, s.DB, `SELECT status FROM acquiring_requests WHERE id = $1`, requestID))
		require.Equal(t, int64(6), queryInt(t, s.DB, `SELECT quantity FROM supplies WHERE id = $1`, supplyID))

		title, message, typ := latestUserNotification(t, s.DB, acquirerID)
		require.Equal(t, "Acquiring Request Approved", title)
		require.Equal(t, "Your supply acquiring request has been approved.", message)
		require.Equal(t, "info", typ)

		action, details, _ := latestAuditEntry(t, s.DB, "supply_logs", "supply_id", supplyID)
		require.Equal(t, "approved", action)
		require.Equal(t, fmt.Sprintf("Acquiring request ID %d approved, quantity: 4", requestID), details)
	})

	s.Run("Normal case: Rejection leaves the stock untouched", func() {
		t := s.T()

		acquirerID := dbtest.CreateTestUser(t, s.DB, "acquirer@example.com", "staff")
		supplyID := dbtest.CreateSupply(t, s.DB, "Toner Cartridge", 10)
		requestID := dbtest.CreateAcquiringRequest(t, s.DB, acquirerID, supplyID, 4, "Pending")

		body := request.BulkUpdateStatusRequest{IDs: []int64{requestID}, Status: "Rejected"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, acquiringStatusURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		require.Equal(t, "Rejected", queryString(t, s.DB, `SELECT status FROM acquiring_requests WHERE id = $1`, requestID))
		require.Equal(t, int64(10), queryInt(t, s.DB, `SELECT quantity FROM supplies WHERE id = $1`, supplyID))
	})

	s.Run("Error case: Insufficient stock fails the whole single-id batch", func() {
		t := s.T()

		acquirerID := dbtest.CreateTestUser(t, s.DB, "acquirer@example.com", "staff")
		supplyID := dbtest.CreateSupply(t, s.DB, "Toner Cartridge", 3)
		requestID := dbtest.CreateAcquiringRequest(t, s.DB, acquirerID, supplyID, 5, "Pending")

		body := request.BulkUpdateStatusRequest{IDs: []int64{requestID}, Status: "Approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, acquiringStatusURL, body, s.adminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusConflict,
			"Insufficient quantity for supply Toner Cartridge. Available: 3, Requested: 5")

		// The failed id must leave no trace behind
		require.Equal(t, "Pending", queryString(t, s.DB, `SELECT status FROM acquiring_requests WHERE id = $1`, requestID))
		require.Equal(t, int64(3), queryInt(t, s.DB, `SELECT quantity FROM supplies WHERE id = $1`, supplyID))
		require.Equal(t, int64(0), queryInt(t, s.DB, `SELECT COUNT(*) FROM user_notifications WHERE user_id = $1`, acquirerID))
	})

	s.Run("Normal case: Stock shortfall skips only the failing id", func() {
		t := s.T()

		acquirerID := dbtest.CreateTestUser(t, s.DB, "acquirer@example.com", "staff")
		shortID := dbtest.CreateSupply(t, s.DB, "Staplers", 2)
		stockedID := dbtest.CreateSupply(t, s.DB, "Folders", 20)
		failing := dbtest.CreateAcquiringRequest(t, s.DB, acquirerID, shortID, 5, "Pending")
		passing := dbtest.CreateAcquiringRequest(t, s.DB, acquirerID, stockedID, 5, "Pending")

		body := request.BulkUpdateStatusRequest{IDs: []int64{failing, passing}, Status: "Approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, acquiringStatusURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.BulkUpdateResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Equal(t, 1, res.UpdatedCount)
		require.Len(t, res.Failed, 1)
		require.Equal(t, failing, res.Failed[0].ID)
		require.Equal(t, "Insufficient quantity for supply Staplers. Available: 2, Requested: 5", res.Failed[0].Reason)

		require.Equal(t, "Pending", queryString(t, s.DB, `SELECT status FROM acquiring_requests WHERE id = $1`, failing))
		require.Equal(t, int64(2), queryInt(t, s.DB, `SELECT quantity FROM supplies WHERE id = $1`, shortID))
		require.Equal(t, "Approved", queryString(t, s.DB, `SELECT status FROM acquiring_requests WHERE id = $1`, passing))
		require.Equal(t, int64(15), queryInt(t, s.DB, `SELECT quantity FROM supplies WHERE id = $1`, stockedID))
	})
}

// =============================================================================
// TestBulkDeleteRequests - Admin deletion API tests
// =============================================================================

func (s *RequestsSuite) TestBulkDeleteRequests() {
	s.Run("Normal case: Deletion removes the row and warns the requester", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		requestID := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")

		body := request.BulkDeleteRequest{IDs: []int64{requestID}}
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, borrowingDeleteURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.BulkDeleteResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.True(t, res.Success)
		require.Equal(t, 1, res.DeletedCount)
		require.Equal(t, "Successfully deleted 1 borrowing requests", res.Message)

		require.Equal(t, int64(0), queryInt(t, s.DB, `SELECT COUNT(*) FROM borrowing_requests WHERE id = $1`, requestID))

		title, message, typ := latestUserNotification(t, s.DB, borrowerID)
		require.Equal(t, "Borrowing Request Deleted", title)
		require.Equal(t, "Your borrowing request has been deleted by an administrator.", message)
		require.Equal(t, "warning", typ)

		action, details, _ := latestAuditEntry(t, s.DB, "equipment_logs", "equipment_id", equipmentID)
		require.Equal(t, "deleted", action)
		require.Equal(t, fmt.Sprintf("Borrowing request ID %d deleted", requestID), details)
	})

	s.Run("Normal case: Deleting an approved borrowing frees the equipment", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		requestID := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Approved")
		execSQL(t, s.DB, `UPDATE equipment SET availability = 'Borrowed' WHERE id = $1`, equipmentID)

		body := request.BulkDeleteRequest{IDs: []int64{requestID}}
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, borrowingDeleteURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		require.Equal(t, "Available", queryString(t, s.DB, `SELECT availability FROM equipment WHERE id = $1`, equipmentID))
	})

	s.Run("Normal case: A returned borrowing leaves the equipment alone", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		// The item went back already; someone else may hold the equipment now
		heldByOther := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		requestID := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, heldByOther, "Approved")
		execSQL(t, s.DB, `UPDATE borrowing_requests SET return_status = 'Returned' WHERE id = $1`, requestID)
		execSQL(t, s.DB, `UPDATE equipment SET availability = 'Borrowed' WHERE id = $1`, heldByOther)

		body := request.BulkDeleteRequest{IDs: []int64{requestID}}
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, borrowingDeleteURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		require.Equal(t, "Borrowed", queryString(t, s.DB, `SELECT availability FROM equipment WHERE id = $1`, heldByOther))
	})

	s.Run("Normal case: Pending hand-off notices go away with the request", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		requestID := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Approved")
		dbtest.CreateReturnNotification(t, s.DB, requestID, "Front Desk")

		body := request.BulkDeleteRequest{IDs: []int64{requestID}}
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, borrowingDeleteURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		require.Equal(t, int64(0), queryInt(t, s.DB, `SELECT COUNT(*) FROM return_notifications WHERE borrowing_id = $1`, requestID))
	})

	s.Run("Normal case: Booking deletion drops its completion notices", func() {
		t := s.T()

		bookerID := dbtest.CreateTestUser(t, s.DB, "booker@example.com", "staff")
		facilityID := dbtest.CreateFacility(t, s.DB, "Training Room B")
		requestID := dbtest.CreateBookingRequest(t, s.DB, bookerID, facilityID, "Approved")
		dbtest.CreateDoneNotification(t, s.DB, requestID, "Projector packed up")

		body := request.BulkDeleteRequest{IDs: []int64{requestID}}
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingDeleteURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Equal(t, int64(0), queryInt(t, s.DB, `SELECT COUNT(*) FROM booking_requests WHERE id = $1`, requestID))
		require.Equal(t, int64(0), queryInt(t, s.DB, `SELECT COUNT(*) FROM done_notifications WHERE booking_id = $1`, requestID))

		action, details, _ := latestAuditEntry(t, s.DB, "facility_logs", "facility_id", facilityID)
		require.Equal(t, "deleted", action)
		require.Equal(t, fmt.Sprintf("Booking request ID %d deleted", requestID), details)
	})

	s.Run("Normal case: Mixed batch reports missing ids", func() {
		t := s.T()

		borrowerID := dbtest.CreateTestUser(t, s.DB, "borrower@example.com", "staff")
		equipmentID := dbtest.CreateEquipment(t, s.DB, "Projector X200")
		requestID := dbtest.CreateBorrowingRequest(t, s.DB, borrowerID, equipmentID, "Pending")

		body := request.BulkDeleteRequest{IDs: []int64{requestID, 99999}}
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, borrowingDeleteURL, body, s.adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		var res response.BulkDeleteResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.Equal(t, 1, res.DeletedCount)
		require.Len(t, res.Failed, 1)
		require.Equal(t, int64(99999), res.Failed[0].ID)
		require.Equal(t, "not found", res.Failed[0].Reason)
	})

	s.Run("Error case: Empty ids returns 400", func() {
		t := s.T()

		body := request.BulkDeleteRequest{IDs: []int64{}}
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, borrowingDeleteURL, body, s.adminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "No IDs provided")
	})
}

// =============================================================================
// DB assertion helpers (shared with the confirmation flow suite)
// =============================================================================

func queryString(t *testing.T, db *pgxpool.Pool, sql string, args ...any) string {
	t.Helper()
	var v string
	err := db.QueryRow(context.Background(), sql, args...).Scan(&v)
	require.NoError(t, err)
	return v
}

func queryInt(t *testing.T, db *pgxpool.Pool, sql string, args ...any) int64 {
	t.Helper()
	var v int64
	err := db.QueryRow(context.Background(), sql, args...).Scan(&v)
	require.NoError(t, err)
	return v
}

func execSQL(t *testing.T, db *pgxpool.Pool, sql string, args ...any) {
	t.Helper()
	_, err := db.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}

func latestUserNotification(t *testing.T, db *pgxpool.Pool, userID int64) (title, message, typ string) {
	t.Helper()
	err := db.QueryRow(context.Background(), `
		SELECT title, message, type FROM user_notifications
		WHERE user_id = $1 ORDER BY id DESC LIMIT 1`, userID).Scan(&title, &message, &typ)
	require.NoError(t, err)
	return title, message, typ
}

func latestAuditEntry(t *testing.T, db *pgxpool.Pool, table, idColumn string, resourceID int64) (action, details, performedBy string) {
	t.Helper()
	sql := fmt.Sprintf(`SELECT action, details, performed_by FROM %s WHERE %s = $1 ORDER BY id DESC LIMIT 1`, table, idColumn)
	err := db.QueryRow(context.Background(), sql, resourceID).Scan(&action, &details, &performedBy)
	require.NoError(t, err)
	return action, details, performedBy
}
