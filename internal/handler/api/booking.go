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

type BookingHandler struct {
	cmds          commands.BookingCommands
	confirmations commands.ConfirmationCommands
	q             queries.RequestQueries
	cq            queries.ConfirmationQueries
}

func NewBookingHandler(
	cmds commands.BookingCommands,
	confirmations commands.ConfirmationCommands,
	q queries.RequestQueries,
	cq queries.ConfirmationQueries,
) *BookingHandler {
	return &BookingHandler{cmds: cmds, confirmations: confirmations, q: q, cq: cq}
}

// @Summary List booking requests
// @Description List all facility booking requests with pagination and optional status filter
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param status query string false "Filter by status"
// @Success 200 {object} resdto.BookingRequestListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /booking/requests [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	views, meta, err := h.q.ListBookingRequests(c.Request.Context(), q.ToParams())
	if err != nil {
		abortListError(c, err)
		return
	}
	resp, err := resdto.NewBookingRequestList(views, meta)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List done notifications
// @Description List pending booking completion notifications awaiting confirmation
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DoneNotificationItem
// @Failure 401 {object} map[string]string
// @Router /booking/done-notifications [get]
func (h *BookingHandler) ListDoneNotifications(c *gin.Context) {
	views, err := h.cq.PendingDoneNotifications(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	items, err := resdto.NewDoneNotificationList(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Bulk update booking request status
// @Description Approve or reject booking requests, one transaction per id
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkUpdateStatusRequest true "IDs and decision"
// @Success 200 {object} resdto.BulkUpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/bulk-update-status [put]
func (h *BookingHandler) BulkUpdateStatus(c *gin.Context) {
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
		abortWorkflowError(c, err, "Booking request not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBulkUpdate(result, strings.ToLower(req.Status), "booking"))
}

// @Summary Bulk delete booking requests
// @Description Delete booking requests and their completion notifications
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkDeleteRequest true "IDs to delete"
// @Success 200 {object} resdto.BulkDeleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/bulk-delete [delete]
func (h *BookingHandler) BulkDelete(c *gin.Context) {
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
		abortWorkflowError(c, err, "Booking request not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBulkDelete(result, "booking"))
}

// @Summary Confirm booking completion
// @Description Confirm a pending completion: marks the booking Completed
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmDoneRequest true "Notification and booking ids"
// @Success 200 {object} resdto.SuccessMessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/confirm-done [post]
func (h *BookingHandler) ConfirmDone(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.ConfirmDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.confirmations.ConfirmDone(c.Request.Context(), actor, req.NotificationID, req.BookingID); err != nil {
		abortConfirmationError(c, err, "Done notification not found", "Booking record not found")
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessMessageResponse{Success: true, Message: "Booking completion confirmed successfully"})
}

// @Summary Dismiss booking completion
// @Description Dismiss a pending completion: the booking stays Approved
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DismissDoneRequest true "Done notification id"
// @Success 200 {object} resdto.SuccessMessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/dismiss-done [post]
func (h *BookingHandler) DismissDone(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.DismissDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.confirmations.DismissDone(c.Request.Context(), actor, req.NotificationID); err != nil {
		abortConfirmationError(c, err, "Done notification not found", "Booking record not found")
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessMessageResponse{Success: true, Message: "Booking completion dismissed"})
}
