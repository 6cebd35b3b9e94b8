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

type AcquiringHandler struct {
	cmds commands.AcquiringCommands
	q    queries.RequestQueries
}

func NewAcquiringHandler(cmds commands.AcquiringCommands, q queries.RequestQueries) *AcquiringHandler {
	return &AcquiringHandler{cmds: cmds, q: q}
}

// @Summary List acquiring requests
// @Description List all supply acquiring requests with pagination and optional status filter
// @Tags acquiring
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 100)"
// @Param status query string false "Filter by status"
// @Success 200 {object} resdto.AcquiringRequestListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /acquiring/requests [get]
func (h *AcquiringHandler) List(c *gin.Context) {
	var q reqdto.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	views, meta, err := h.q.ListAcquiringRequests(c.Request.Context(), q.ToParams())
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

// @Summary Bulk update acquiring request status
// @Description Approve or reject acquiring requests, approval deducts supply stock
// @Tags acquiring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkUpdateStatusRequest true "IDs and decision"
// @Success 200 {object} resdto.BulkUpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /acquiring/bulk-update-status [put]
func (h *AcquiringHandler) BulkUpdateStatus(c *gin.Context) {
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
		abortWorkflowError(c, err, "Acquiring request not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBulkUpdate(result, strings.ToLower(req.Status), "acquiring"))
}

// @Summary Bulk delete acquiring requests
// @Description Delete acquiring requests
// @Tags acquiring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkDeleteRequest true "IDs to delete"
// @Success 200 {object} resdto.BulkDeleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /acquiring/bulk-delete [delete]
func (h *AcquiringHandler) BulkDelete(c *gin.Context) {
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
		abortWorkflowError(c, err, "Acquiring request not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBulkDelete(result, "acquiring"))
}
