package request

// Confirm operations carry both the notice id and the request id the client
// believes it belongs to; the pair is verified server-side.
type ConfirmReturnRequest struct {
	NotificationID int64 `json:"notification_id" binding:"required"`
	BorrowingID    int64 `json:"borrowing_id" binding:"required"`
}

type RejectReturnRequest struct {
	NotificationID int64 `json:"notification_id" binding:"required"`
}

type ConfirmDoneRequest struct {
	NotificationID int64 `json:"notification_id" binding:"required"`
	BookingID      int64 `json:"booking_id" binding:"required"`
}

type DismissDoneRequest struct {
	NotificationID int64 `json:"notification_id" binding:"required"`
}
