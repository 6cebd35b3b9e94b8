package api

import (
	"errors"
	"net/http"

	"resource-desk/internal/domain/confirmation"
	"resource-desk/internal/domain/request"
	"resource-desk/internal/handler/httperr"
	"resource-desk/internal/infra"
	"resource-desk/internal/pkg/errs"
	"resource-desk/internal/usecase/commands"
	"resource-desk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// errUnauthenticated covers the should-not-happen case of a handler running
// without RequireAuth having populated the context.
var errUnauthenticated = errs.New("user not authenticated")

// abortWorkflowError maps bulk lifecycle failures onto HTTP statuses. The
// notFound message is domain-specific; everything else is uniform.
func abortWorkflowError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, commands.ErrNoIDs):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No IDs provided", nil)
	case errors.Is(err, request.ErrInvalidDecision):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Status must be 'Approved' or 'Rejected'", nil)
	case errors.Is(err, request.ErrAlreadyDecided):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request already processed", nil)
	case errors.Is(err, commands.ErrInsufficientStock):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errors.Is(err, commands.ErrNotOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "You do not own this request", nil)
	case errors.Is(err, commands.ErrDeleteApproved):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Cannot delete approved requests", nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFound, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// abortReportError maps requester-side hand-off reports (mark-returned,
// mark-done). The pending message differs per domain.
func abortReportError(c *gin.Context, err error, notFound, alreadyPending string) {
	switch {
	case errors.Is(err, commands.ErrReceiverRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Receiver name is required", nil)
	case errors.Is(err, commands.ErrRequestNotApproved):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Request is not approved", nil)
	case errors.Is(err, commands.ErrAlreadyReturned):
		httperr.AbortWithError(c, http.StatusConflict, err, "Equipment already returned", nil)
	case errors.Is(err, commands.ErrConfirmationPending):
		httperr.AbortWithError(c, http.StatusConflict, err, alreadyPending, nil)
	case errors.Is(err, commands.ErrNotOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "You do not own this request", nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFound, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortListError(c *gin.Context, err error) {
	if errors.Is(err, queries.ErrInvalidStatusFilter) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// abortConfirmationError maps hand-off resolution failures. notFound covers
// the notice itself, recordNotFound the request id it was paired with.
func abortConfirmationError(c *gin.Context, err error, notFound, recordNotFound string) {
	switch {
	case errors.Is(err, confirmation.ErrAlreadyResolved):
		httperr.AbortWithError(c, http.StatusConflict, err, "Notification already resolved", nil)
	case errors.Is(err, commands.ErrRequestMismatch):
		httperr.AbortWithError(c, http.StatusNotFound, err, recordNotFound, nil)
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFound, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
