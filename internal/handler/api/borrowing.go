package api

import (
	"net/http"
	"strings"

	reqdto "resource-desk/internal/handler/dto/request"
	resdto "resource-desk/internal/handler/dto/response"
	"resource-desk/internal/handler/httperr"
	"resource-desk/internal/handler/middleware"
	"resource-desk/internal/usecase/commands"
	"resource-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BorrowingHandler struct {
	cmds          commands.BorrowingCommands
	confirmations commands.ConfirmationCommands
	q             queries.RequestQueries
	cq            queries.ConfirmationQueries
}

func NewBorrowingHandler(
	cmds commands.BorrowingCommands,
	confirmations commands.ConfirmationCommands,
	q queries.RequestQueries,
	cq queries.ConfirmationQueries,
) *BorrowingHandler {
	return &BorrowingHandler{cmds: cmds, confirmations: confirmations, q: q, cq: cq}
}

// @Summary List borrowing requests
// @Description List all equipment borrowing requests with pagination and optional status filter
// @Tags borrowing
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param status query string false "Filter by status"
// @Success 200 {object} resdto.BorrowingRequestListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /borrowing/requests [get]
func (h *BorrowingHandler) List(c *gin.Context) {
	var q reqdto.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	views, meta, err := h.q.ListBorrowingRequests(c.Request.Context(), q.ToParams())
	if err != nil {
		abortListError(c, err)
		return
	}
	resp, err := resdto.NewBorrowingRequestList(views, meta)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List return notifications
// @Description List pending equipment return notifications awaiting confirmation
// @Tags borrowing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReturnNotificationItem
// @Failure 401 {object} map[string]string
// @Router /borrowing/return-notifications [get]
func (h *BorrowingHandler) ListReturnNotifications(c *gin.Context) {
	views, err := h.cq.PendingReturnNotifications(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	items, err := resdto.NewReturnNotificationList(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Bulk update borrowing request status
// @Description Approve or reject borrowing requests, one transaction per id
// @Tags borrowing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkUpdateStatusRequest true "IDs and decision"
// @Success 200 {object} resdto.BulkUpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /borrowing/bulk-update-status [put]
func (h *BorrowingHandler) BulkUpdateStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.BulkUpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.BulkUpdateStatus(c.Request.Context(), actor, req.IDs, req.Status)
	if err != nil {
		abortWorkflowError(c, err, "Borrowing request not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBulkUpdate(result, strings.ToLower(req.Status), "borrowing"))
}

// @Summary Bulk delete borrowing requests
// @Description Delete borrowing requests, freeing equipment still held by approved ones
// @Tags borrowing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkDeleteRequest true "IDs to delete"
// @Success 200 {object} resdto.BulkDeleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /borrowing/bulk-delete [delete]
func (h *BorrowingHandler) BulkDelete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.BulkDelete(c.Request.Context(), actor, req.IDs)
	if err != nil {
		abortWorkflowError(c, err, "Borrowing request not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBulkDelete(result, "borrowing"))
}

// @Summary Confirm equipment return
// @Description Confirm a pending return: marks the borrowing returned and frees the equipment
// @Tags borrowing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmReturnRequest true "Notification and borrowing ids"
// @Success 200 {object} resdto.SuccessMessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /borrowing/confirm-return [post]
func (h *BorrowingHandler) ConfirmReturn(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.ConfirmReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.confirmations.ConfirmReturn(c.Request.Context(), actor, req.NotificationID, req.BorrowingID); err != nil {
		abortConfirmationError(c, err, "Return notification not found", "Borrowing record not found")
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessMessageResponse{Success: true, Message: "Equipment return confirmed successfully"})
}

// @Summary Reject equipment return
// @Description Reject a pending return: the borrowing and equipment stay unchanged
// @Tags borrowing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RejectReturnRequest true "Return notification id"
// @Success 200 {object} resdto.SuccessMessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /borrowing/reject-return [post]
func (h *BorrowingHandler) RejectReturn(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.RejectReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.confirmations.RejectReturn(c.Request.Context(), actor, req.NotificationID); err != nil {
		abortConfirmationError(c, err, "Return notification not found", "Borrowing record not found")
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessMessageResponse{Success: true, Message: "Equipment return rejected"})
}
