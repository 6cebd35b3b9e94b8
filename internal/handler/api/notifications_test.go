//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"resource-desk/internal/domain/notification"
	"resource-desk/internal/handler/api"
	resdto "resource-desk/internal/handler/dto/response"
	"resource-desk/internal/infra"
	"resource-desk/internal/usecase/queries"
	"resource-desk/internal/usecase/shared"
	"resource-desk/tests/common/builder"
	"resource-desk/tests/common/httptest"
	commandsmock "resource-desk/tests/mock/commands"
	queriesmock "resource-desk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotificationCommands
	mockQueries  *queriesmock.MockNotificationQueries
	handler      *api.NotificationHandler
	actor        shared.Actor
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.handler = api.NewNotificationHandler(s.mockCommands, s.mockQueries)
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
	s.router.GET("/notifications", authMiddleware, s.handler.List)
	s.router.GET("/notifications/unread-count", authMiddleware, s.handler.UnreadCount)
	s.router.PATCH("/notifications/:id/read", authMiddleware, s.handler.MarkRead)
	s.router.POST("/notifications/mark-all-read", authMiddleware, s.handler.MarkAllRead)
	s.router.DELETE("/notifications/:id", authMiddleware, s.handler.Delete)
	s.router.DELETE("/notifications", authMiddleware, s.handler.DeleteAll)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *NotificationHandlerTestSuite) TestList() {
	url := "/notifications"

	s.Run("success: returns 200 OK with the caller's feed", func() {
		views := []queries.UserNotificationView{
			{
				ID:        1,
				UserID:    s.actor.UserID,
				Title:     "Borrowing Request Approved",
				Message:   "Your borrowing request for equipment has been approved.",
				Type:      string(notification.TypeInfo),
				IsRead:    false,
				CreatedAt: time.Now(),
			},
			{
				ID:        2,
				UserID:    s.actor.UserID,
				Title:     "Equipment Return Confirmed",
				Message:   "Your equipment return has been confirmed",
				Type:      string(notification.TypeSuccess),
				IsRead:    true,
				CreatedAt: time.Now(),
			},
		}
		s.mockQueries.EXPECT().
			ListForUser(gomock.Any(), s.actor.UserID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var items []resdto.UserNotificationItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &items)
		s.Len(items, 2)
		s.Equal("Borrowing Request Approved", items[0].Title)
		s.False(items[0].IsRead)
		s.True(items[1].IsRead)
	})

	s.Run("success: empty feed decodes as an empty array", func() {
		s.mockQueries.EXPECT().
			ListForUser(gomock.Any(), s.actor.UserID).
			Return([]queries.UserNotificationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var items []resdto.UserNotificationItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &items)
		s.Empty(items)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockQueries.EXPECT().
			ListForUser(gomock.Any(), s.actor.UserID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUnreadCount
// ================================================================================

func (s *NotificationHandlerTestSuite) TestUnreadCount() {
	url := "/notifications/unread-count"

	s.Run("success: returns 200 OK with the unread total", func() {
		s.mockQueries.EXPECT().
			UnreadCount(gomock.Any(), s.actor.UserID).
			Return(int64(4), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UnreadCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(4), response.UnreadCount)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestMarkRead
// ================================================================================

func (s *NotificationHandlerTestSuite) TestMarkRead() {
	s.Run("success: returns 200 OK after marking the notification", func() {
		s.mockCommands.EXPECT().
			MarkRead(gomock.Any(), s.actor, int64(5)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/notifications/5/read", nil, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Notification marked as read", response.Message)
	})

	s.Run("error: 400 Bad Request on a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/notifications/abc/read", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid notification id")
	})

	s.Run("error: 404 Not Found when the notification is not the caller's", func() {
		s.mockCommands.EXPECT().
			MarkRead(gomock.Any(), s.actor, int64(99)).
			Return(infra.WrapRepoErr("notification not found", pgx.ErrNoRows, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/notifications/99/read", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Notification not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/notifications/5/read", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestMarkAllRead
// ================================================================================

func (s *NotificationHandlerTestSuite) TestMarkAllRead() {
	url := "/notifications/mark-all-read"

	s.Run("success: returns 200 OK after marking every notification", func() {
		s.mockCommands.EXPECT().
			MarkAllRead(gomock.Any(), s.actor).
			Return(int64(7), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("All notifications marked as read", response.Message)
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockCommands.EXPECT().
			MarkAllRead(gomock.Any(), s.actor).
			Return(int64(0), errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *NotificationHandlerTestSuite) TestDelete() {
	s.Run("success: returns 200 OK after deleting the notification", func() {
		s.mockCommands.EXPECT().
			Delete(gomock.Any(), s.actor, int64(5)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/notifications/5", nil, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Notification deleted successfully", response.Message)
	})

	s.Run("error: 400 Bad Request on a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/notifications/abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid notification id")
	})

	s.Run("error: 404 Not Found when the notification is not the caller's", func() {
		s.mockCommands.EXPECT().
			Delete(gomock.Any(), s.actor, int64(99)).
			Return(infra.WrapRepoErr("notification not found", pgx.ErrNoRows, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/notifications/99", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Notification not found")
	})
}

// ================================================================================
// TestDeleteAll
// ================================================================================

func (s *NotificationHandlerTestSuite) TestDeleteAll() {
	url := "/notifications"

	s.Run("success: reports how many notifications were removed", func() {
		s.mockCommands.EXPECT().
			DeleteAll(gomock.Any(), s.actor).
			Return(int64(3), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Deleted 3 notification(s)", response.Message)
	})

	s.Run("success: an empty feed still succeeds", func() {
		s.mockCommands.EXPECT().
			DeleteAll(gomock.Any(), s.actor).
			Return(int64(0), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Deleted 0 notification(s)", response.Message)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
