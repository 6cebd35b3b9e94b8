//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"resource-desk/internal/handler/api"
	reqdto "resource-desk/internal/handler/dto/request"
	resdto "resource-desk/internal/handler/dto/response"
	"resource-desk/internal/infra"
	"resource-desk/internal/usecase/commands"
	"resource-desk/internal/usecase/queries"
	"resource-desk/internal/usecase/shared"
	"resource-desk/tests/common/builder"
	"resource-desk/tests/common/httptest"
	"resource-desk/tests/common/testutil"
	commandsmock "resource-desk/tests/mock/commands"
	queriesmock "resource-desk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MyRequestsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMyRequestCommands
	mockQueries  *queriesmock.MockRequestQueries
	handler      *api.MyRequestsHandler
	actor        shared.Actor
}

func (s *MyRequestsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMyRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	s.handler = api.NewMyRequestsHandler(s.mockCommands, s.mockQueries)
	s.actor = builder.NewUserBuilder().WithID(10).WithEmail("staff@example.com").WithRole("staff").BuildActor()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", s.actor)
		c.Set("user_id", s.actor.UserID)
		c.Set("user_role", s.actor.Role)
		c.Next()
	}

	// Setup routes
	s.router.GET("/my/borrowing/requests", authMiddleware, s.handler.ListBorrowing)
	s.router.POST("/my/borrowing/mark-returned", authMiddleware, s.handler.MarkReturned)
	s.router.DELETE("/my/borrowing/bulk-delete", authMiddleware, s.handler.DeleteBorrowing)
	s.router.GET("/my/booking/requests", authMiddleware, s.handler.ListBooking)
	s.router.POST("/my/booking/mark-done", authMiddleware, s.handler.MarkDone)
	s.router.DELETE("/my/booking/bulk-delete", authMiddleware, s.handler.DeleteBooking)
	s.router.GET("/my/acquiring/requests", authMiddleware, s.handler.ListAcquiring)
	s.router.DELETE("/my/acquiring/bulk-delete", authMiddleware, s.handler.DeleteAcquiring)
}

func (s *MyRequestsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMyRequestsHandlerSuite(t *testing.T) {
	suite.Run(t, new(MyRequestsHandlerTestSuite))
}

// ================================================================================
// TestListBorrowing
// ================================================================================

func (s *MyRequestsHandlerTestSuite) TestListBorrowing() {
	url := "/my/borrowing/requests"

	returnView := builder.NewRequestBuilder().BuildBorrowingView()

	s.Run("success: returns 200 OK scoped to the caller", func() {
		meta := queries.NewPageMeta(1, queries.ListParams{Page: 1, PageSize: 10})
		s.mockQueries.EXPECT().
			ListMyBorrowingRequests(gomock.Any(), s.actor.UserID, queries.ListParams{Page: 1, PageSize: 10}).
			Return([]queries.BorrowingRequestView{returnView}, meta, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BorrowingRequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Data, 1)
		s.Equal(s.actor.UserID, response.Data[0].BorrowerID)
	})

	s.Run("error: 400 Bad Request on invalid status filter", func() {
		s.mockQueries.EXPECT().
			ListMyBorrowingRequests(gomock.Any(), s.actor.UserID, gomock.Any()).
			Return(nil, queries.PageMeta{}, queries.ErrInvalidStatusFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=Returned", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestListBooking
// ================================================================================

func (s *MyRequestsHandlerTestSuite) TestListBooking() {
	url := "/my/booking/requests"

	returnView := builder.NewRequestBuilder().
		WithResource(200, "Conference Room A").
		BuildBookingView()

	s.Run("success: returns 200 OK scoped to the caller", func() {
		meta := queries.NewPageMeta(1, queries.ListParams{Page: 1, PageSize: 10})
		s.mockQueries.EXPECT().
			ListMyBookingRequests(gomock.Any(), s.actor.UserID, queries.ListParams{Page: 1, PageSize: 10}).
			Return([]queries.BookingRequestView{returnView}, meta, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingRequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Data, 1)
		s.Equal("Conference Room A", response.Data[0].FacilityName)
	})
}

// ================================================================================
// TestListAcquiring
// ================================================================================

func (s *MyRequestsHandlerTestSuite) TestListAcquiring() {
	url := "/my/acquiring/requests"

	returnView := builder.NewRequestBuilder().
		WithResource(300, "A4 Paper").
		BuildAcquiringView()

	s.Run("success: returns 200 OK scoped to the caller", func() {
		meta := queries.NewPageMeta(1, queries.ListParams{Page: 1, PageSize: 10})
		s.mockQueries.EXPECT().
			ListMyAcquiringRequests(gomock.Any(), s.actor.UserID, queries.ListParams{Page: 1, PageSize: 10}).
			Return([]queries.AcquiringRequestView{returnView}, meta, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AcquiringRequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Data, 1)
		s.Equal("A4 Paper", response.Data[0].SupplyName)
	})
}

// ================================================================================
// TestMarkReturned
// ================================================================================

func (s *MyRequestsHandlerTestSuite) TestMarkReturned() {
	url := "/my/borrowing/mark-returned"

	reqBody := reqdto.MarkReturnedRequest{BorrowingID: 1, ReceiverName: "Front Desk"}

	s.Run("success: returns 200 OK after reporting the return", func() {
		s.mockCommands.EXPECT().
			MarkReturned(gomock.Any(), s.actor, int64(1), "Front Desk").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Return reported", response.Message)
	})

	s.Run("error: 400 Bad Request on missing borrowing_id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("borrowing_id", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "receiver name missing",
				commandsError:  commands.ErrReceiverRequired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Receiver name is required",
			},
			{
				name:           "request not approved",
				commandsError:  commands.ErrRequestNotApproved,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Request is not approved",
			},
			{
				name:           "already returned",
				commandsError:  commands.ErrAlreadyReturned,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Equipment already returned",
			},
			{
				name:           "confirmation already pending",
				commandsError:  commands.ErrConfirmationPending,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Return already reported",
			},
			{
				name:           "not the owner",
				commandsError:  commands.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "You do not own this request",
			},
			{
				name:           "request not found",
				commandsError:  infra.WrapRepoErr("borrowing request not found", pgx.ErrNoRows, infra.KindNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Borrowing request not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					MarkReturned(gomock.Any(), s.actor, int64(1), "Front Desk").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestMarkDone
// ================================================================================

func (s *MyRequestsHandlerTestSuite) TestMarkDone() {
	url := "/my/booking/mark-done"

	reqBody := reqdto.MarkDoneRequest{BookingID: 3, CompletionNotes: "All cleaned up"}

	s.Run("success: returns 200 OK after reporting completion", func() {
		s.mockCommands.EXPECT().
			MarkDone(gomock.Any(), s.actor, int64(3), "All cleaned up").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Completion reported", response.Message)
	})

	s.Run("success: completion notes may be empty", func() {
		s.mockCommands.EXPECT().
			MarkDone(gomock.Any(), s.actor, int64(3), "").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.MarkDoneRequest{BookingID: 3}, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Completion reported", response.Message)
	})

	s.Run("error: 400 Bad Request on missing booking_id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("booking_id", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "request not approved",
				commandsError:  commands.ErrRequestNotApproved,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Request is not approved",
			},
			{
				name:           "confirmation already pending",
				commandsError:  commands.ErrConfirmationPending,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Completion already reported",
			},
			{
				name:           "not the owner",
				commandsError:  commands.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "You do not own this request",
			},
			{
				name:           "request not found",
				commandsError:  infra.WrapRepoErr("booking request not found", pgx.ErrNoRows, infra.KindNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking request not found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					MarkDone(gomock.Any(), s.actor, int64(3), "All cleaned up").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeleteBorrowing
// ================================================================================

func (s *MyRequestsHandlerTestSuite) TestDeleteBorrowing() {
	url := "/my/borrowing/bulk-delete"

	reqBody := reqdto.BulkDeleteRequest{IDs: []int64{1, 2}}

	s.Run("success: returns 200 OK with delete summary", func() {
		s.mockCommands.EXPECT().
			DeleteOwnBorrowing(gomock.Any(), s.actor, []int64{1, 2}).
			Return(&commands.BulkResult{Count: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")

		var response resdto.BulkDeleteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal(2, response.DeletedCount)
		s.Equal("Successfully deleted 2 borrowing requests", response.Message)
	})

	s.Run("success: reports skipped ids alongside the count", func() {
		s.mockCommands.EXPECT().
			DeleteOwnBorrowing(gomock.Any(), s.actor, []int64{1, 2}).
			Return(&commands.BulkResult{
				Count:  1,
				Failed: []commands.FailedID{{ID: 2, Reason: "approved requests cannot be deleted"}},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")

		var response resdto.BulkDeleteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.DeletedCount)
		s.Len(response.Failed, 1)
		s.Equal("approved requests cannot be deleted", response.Failed[0].Reason)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no ids provided",
				commandsError:  commands.ErrNoIDs,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "No IDs provided",
			},
			{
				name:           "not the owner",
				commandsError:  commands.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "You do not own this request",
			},
			{
				name:           "approved request",
				commandsError:  commands.ErrDeleteApproved,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Cannot delete approved requests",
			},
			{
				name:           "request not found",
				commandsError:  infra.WrapRepoErr("borrowing request not found", pgx.ErrNoRows, infra.KindNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Borrowing request not found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					DeleteOwnBorrowing(gomock.Any(), s.actor, []int64{1, 2}).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *MyRequestsHandlerTestSuite) TestDeleteBooking() {
	url := "/my/booking/bulk-delete"

	reqBody := reqdto.BulkDeleteRequest{IDs: []int64{3}}

	s.Run("success: returns 200 OK with delete summary", func() {
		s.mockCommands.EXPECT().
			DeleteOwnBooking(gomock.Any(), s.actor, []int64{3}).
			Return(&commands.BulkResult{Count: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")

		var response resdto.BulkDeleteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Successfully deleted 1 booking requests", response.Message)
	})

	s.Run("error: 403 Forbidden for an approved request", func() {
		s.mockCommands.EXPECT().
			DeleteOwnBooking(gomock.Any(), s.actor, []int64{3}).
			Return(nil, commands.ErrDeleteApproved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Cannot delete approved requests")
	})
}

// ================================================================================
// TestDeleteAcquiring
// ================================================================================

func (s *MyRequestsHandlerTestSuite) TestDeleteAcquiring() {
	url := "/my/acquiring/bulk-delete"

	reqBody := reqdto.BulkDeleteRequest{IDs: []int64{5}}

	s.Run("success: returns 200 OK with delete summary", func() {
		s.mockCommands.EXPECT().
			DeleteOwnAcquiring(gomock.Any(), s.actor, []int64{5}).
			Return(&commands.BulkResult{Count: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")

		var response resdto.BulkDeleteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Successfully deleted 1 acquiring requests", response.Message)
	})

	s.Run("error: 403 Forbidden when the request belongs to someone else", func() {
		s.mockCommands.EXPECT().
			DeleteOwnAcquiring(gomock.Any(), s.actor, []int64{5}).
			Return(nil, commands.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "You do not own this request")
	})
}
