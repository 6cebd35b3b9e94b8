package request

type MarkReturnedRequest struct {
	BorrowingID int64 `json:"borrowing_id" binding:"required"`
	// Validated in the usecase so a missing name reports its exact message.
	ReceiverName string `json:"receiver_name"`
}

type MarkDoneRequest struct {
	BookingID       int64  `json:"booking_id" binding:"required"`
	CompletionNotes string `json:"completion_notes"`
}
