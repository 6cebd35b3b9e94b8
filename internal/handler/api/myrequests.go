package api

import (
	"context"
	"net/http"

	reqdto "resource-desk/internal/handler/dto/request"
	resdto "resource-desk/internal/handler/dto/response"
	"resource-desk/internal/handler/httperr"
	"resource-desk/internal/handler/middleware"
	"resource-desk/internal/usecase/commands"
	"resource-desk/internal/usecase/queries"
	"resource-desk/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// MyRequestsHandler is the requester-facing surface: every operation is
// scoped to the authenticated user, never to the whole table.
type MyRequestsHandler struct {
	cmds commands.MyRequestCommands
	q    queries.RequestQueries
}

func NewMyRequestsHandler(cmds commands.MyRequestCommands, q queries.RequestQueries) *MyRequestsHandler {
	return &MyRequestsHandler{cmds: cmds, q: q}
}

// @Summary List own borrowing requests
// @Tags my-requests
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param status query string false "Filter by status"
// @Success 200 {object} resdto.BorrowingRequestListResponse
// @Failure 401 {object} map[string]string
// @Router /my/borrowing/requests [get]
func (h *MyRequestsHandler) ListBorrowing(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var q reqdto.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	views, meta, err := h.q.ListMyBorrowingRequests(c.Request.Context(), actor.UserID, q.ToParams())
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

// @Summary List own booking requests
// @Tags my-requests
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param status query string false "Filter by status"
// @Success 200 {object} resdto.BookingRequestListResponse
// @Failure 401 {object} map[string]string
// @Router /my/booking/requests [get]
func (h *MyRequestsHandler) ListBooking(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var q reqdto.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	views, meta, err := h.q.ListMyBookingRequests(c.Request.Context(), actor.UserID, q.ToParams())
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

// @Summary List own acquiring requests
// @Tags my-requests
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param status query string false "Filter by status"
// @Success 200 {object} resdto.AcquiringRequestListResponse
// @Failure 401 {object} map[string]string
// @Router /my/acquiring/requests [get]
func (h *MyRequestsHandler) ListAcquiring(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var q reqdto.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	views, meta, err := h.q.ListMyAcquiringRequests(c.Request.Context(), actor.UserID, q.ToParams())
	if err != nil {
		abortListError(c, err)
		return
	}
	resp, err := resdto.NewAcquiringRequestList(views, meta)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Report equipment return
// @Description File a return notice for an approved borrowing, pending admin confirmation
// @Tags my-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MarkReturnedRequest true "Borrowing id and receiver name"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /my/borrowing/mark-returned [post]
func (h *MyRequestsHandler) MarkReturned(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.MarkReturnedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.MarkReturned(c.Request.Context(), actor, req.BorrowingID, req.ReceiverName); err != nil {
		abortReportError(c, err, "Borrowing request not found", "Return already reported")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Return reported"})
}

// @Summary Report booking completion
// @Description File a completion notice for an approved booking, pending admin confirmation
// @Tags my-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MarkDoneRequest true "Booking id and optional notes"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /my/booking/mark-done [post]
func (h *MyRequestsHandler) MarkDone(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.MarkDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.MarkDone(c.Request.Context(), actor, req.BookingID, req.CompletionNotes); err != nil {
		abortReportError(c, err, "Booking request not found", "Completion already reported")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Completion reported"})
}

// @Summary Delete own borrowing requests
// @Tags my-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkDeleteRequest true "IDs to delete"
// @Success 200 {object} resdto.BulkDeleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /my/borrowing/bulk-delete [delete]
func (h *MyRequestsHandler) DeleteBorrowing(c *gin.Context) {
	h.deleteOwn(c, h.cmds.DeleteOwnBorrowing, "Borrowing request not found", "borrowing")
}

// @Summary Delete own booking requests
// @Tags my-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkDeleteRequest true "IDs to delete"
// @Success 200 {object} resdto.BulkDeleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /my/booking/bulk-delete [delete]
func (h *MyRequestsHandler) DeleteBooking(c *gin.Context) {
	h.deleteOwn(c, h.cmds.DeleteOwnBooking, "Booking request not found", "booking")
}

// @Summary Delete own acquiring requests
// @Tags my-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkDeleteRequest true "IDs to delete"
// @Success 200 {object} resdto.BulkDeleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /my/acquiring/bulk-delete [delete]
func (h *MyRequestsHandler) DeleteAcquiring(c *gin.Context) {
	h.deleteOwn(c, h.cmds.DeleteOwnAcquiring, "Acquiring request not found", "acquiring")
}

type deleteOwnFn func(ctx context.Context, actor shared.Actor, ids []int64) (*commands.BulkResult, error)

func (h *MyRequestsHandler) deleteOwn(c *gin.Context, run deleteOwnFn, notFound, domain string) {
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
	result, err := run(c.Request.Context(), actor, req.IDs)
	if err != nil {
		abortWorkflowError(c, err, notFound)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBulkDelete(result, domain))
}
