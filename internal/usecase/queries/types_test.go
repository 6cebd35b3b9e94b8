//go:build unit

package queries_test

import (
	"testing"

	"resource-desk/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func ptrInt32(v int32) *int32 {
	return &v
}

func ptrString(s string) *string {
	return &s
}

func TestNewListParams(t *testing.T) {
	testCases := []struct {
		name         string
		page         *int32
		pageSize     *int32
		wantPage     int32
		wantPageSize int32
	}{
		{name: "defaults when nothing is given", page: nil, pageSize: nil, wantPage: 1, wantPageSize: 10},
		{name: "values in range pass through", page: ptrInt32(3), pageSize: ptrInt32(25), wantPage: 3, wantPageSize: 25},
		{name: "zero page clamps to 1", page: ptrInt32(0), pageSize: ptrInt32(10), wantPage: 1, wantPageSize: 10},
		{name: "negative page clamps to 1", page: ptrInt32(-5), pageSize: ptrInt32(10), wantPage: 1, wantPageSize: 10},
		{name: "zero page size clamps to 1", page: ptrInt32(1), pageSize: ptrInt32(0), wantPage: 1, wantPageSize: 1},
		{name: "oversized page size clamps to 100", page: ptrInt32(1), pageSize: ptrInt32(500), wantPage: 1, wantPageSize: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := queries.NewListParams(tc.page, tc.pageSize, nil)

			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantPageSize, p.PageSize)
		})
	}

	t.Run("status filter is carried as-is", func(t *testing.T) {
		status := ptrString("Pending")
		p := queries.NewListParams(nil, nil, status)
		assert.Same(t, status, p.Status)
	})
}

func TestListParams_Offset(t *testing.T) {
	assert.Equal(t, int32(0), queries.NewListParams(nil, nil, nil).Offset())
	assert.Equal(t, int32(50), queries.NewListParams(ptrInt32(3), ptrInt32(25), nil).Offset())
	assert.Equal(t, int32(90), queries.NewListParams(ptrInt32(10), nil, nil).Offset())
}

func TestNewPageMeta(t *testing.T) {
	testCases := []struct {
		name           string
		total          int64
		page           int32
		pageSize       int32
		wantTotalPages int32
	}{
		{name: "empty result still has one page", total: 0, page: 1, pageSize: 10, wantTotalPages: 1},
		{name: "exact multiple", total: 30, page: 1, pageSize: 10, wantTotalPages: 3},
		{name: "partial last page rounds up", total: 25, page: 2, pageSize: 10, wantTotalPages: 3},
		{name: "single row", total: 1, page: 1, pageSize: 10, wantTotalPages: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := queries.NewListParams(ptrInt32(tc.page), ptrInt32(tc.pageSize), nil)
			meta := queries.NewPageMeta(tc.total, p)

			assert.Equal(t, tc.total, meta.Total)
			assert.Equal(t, tc.page, meta.Page)
			assert.Equal(t, tc.pageSize, meta.PageSize)
			assert.Equal(t, tc.wantTotalPages, meta.TotalPages)
		})
	}
}
