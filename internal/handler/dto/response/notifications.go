package response

import (
	"time"

	"resource-desk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// UserNotificationItem is one entry of the bare-array notification feed.
type UserNotificationItem struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

func NewNotificationList(views []queries.UserNotificationView) ([]UserNotificationItem, error) {
	items := make([]UserNotificationItem, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return nil, err
	}
	return items, nil
}
