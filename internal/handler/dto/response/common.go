package response

import (
	"fmt"

	"resource-desk/internal/usecase/commands"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessMessageResponse acknowledges a confirmation-protocol resolution.
type SuccessMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type BulkUpdateResponse struct {
	Success      bool                `json:"success"`
	UpdatedCount int                 `json:"updated_count"`
	Message      string              `json:"message"`
	Failed       []commands.FailedID `json:"failed,omitempty"`
}

type BulkDeleteResponse struct {
	Success      bool                `json:"success"`
	DeletedCount int                 `json:"deleted_count"`
	Message      string              `json:"message"`
	Failed       []commands.FailedID `json:"failed,omitempty"`
}

func FromBulkUpdate(result *commands.BulkResult, verb, domain string) BulkUpdateResponse {
	return BulkUpdateResponse{
		Success:      true,
		UpdatedCount: result.Count,
		Message:      fmt.Sprintf("Successfully %s %d %s requests", verb, result.Count, domain),
		Failed:       result.Failed,
	}
}

func FromBulkDelete(result *commands.BulkResult, domain string) BulkDeleteResponse {
	return BulkDeleteResponse{
		Success:      true,
		DeletedCount: result.Count,
		Message:      fmt.Sprintf("Successfully deleted %d %s requests", result.Count, domain),
		Failed:       result.Failed,
	}
}
