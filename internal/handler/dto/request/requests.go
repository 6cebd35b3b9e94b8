package request

import (
	"resource-desk/internal/usecase/queries"
)

// BulkUpdateStatusRequest carries the ids an admin decided on and the verdict.
// Presence checks happen in the usecase so empty input yields its exact
// message instead of a generic binding error.
type BulkUpdateStatusRequest struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
}

type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// ListRequestsQuery is bound from query parameters. Out-of-range values are
// clamped, not rejected.
type ListRequestsQuery struct {
	Page     *int32  `form:"page"`
	PageSize *int32  `form:"page_size"`
	Status   *string `form:"status"`
}

func (q *ListRequestsQuery) ToParams() queries.ListParams {
	return queries.NewListParams(q.Page, q.PageSize, q.Status)
}
