package queries

import (
	"context"

	"resource-desk/internal/domain/request"
	"resource-desk/internal/pkg/errs"
)

var ErrInvalidStatusFilter = errs.New("Invalid status filter")

type BorrowingReadStore interface {
	List(ctx context.Context, p ListParams) ([]BorrowingRequestView, int64, error)
	ListByUser(ctx context.Context, userID int64, p ListParams) ([]BorrowingRequestView, int64, error)
}

type BookingReadStore interface {
	List(ctx context.Context, p ListParams) ([]BookingRequestView, int64, error)
	ListByUser(ctx context.Context, userID int64, p ListParams) ([]BookingRequestView, int64, error)
}

type AcquiringReadStore interface {
	List(ctx context.Context, p ListParams) ([]AcquiringRequestView, int64, error)
	ListByUser(ctx context.Context, userID int64, p ListParams) ([]AcquiringRequestView, int64, error)
}

type RequestQueries interface {
	ListBorrowingRequests(ctx context.Context, p ListParams) ([]BorrowingRequestView, PageMeta, error)
	ListBookingRequests(ctx context.Context, p ListParams) ([]BookingRequestView, PageMeta, error)
	ListAcquiringRequests(ctx context.Context, p ListParams) ([]AcquiringRequestView, PageMeta, error)
	ListMyBorrowingRequests(ctx context.Context, userID int64, p ListParams) ([]BorrowingRequestView, PageMeta, error)
	ListMyBookingRequests(ctx context.Context, userID int64, p ListParams) ([]BookingRequestView, PageMeta, error)
	ListMyAcquiringRequests(ctx context.Context, userID int64, p ListParams) ([]AcquiringRequestView, PageMeta, error)
}

type requestQueriesImpl struct {
	borrowing BorrowingReadStore
	booking   BookingReadStore
	acquiring AcquiringReadStore
}

func NewRequestQueries(borrowing BorrowingReadStore, booking BookingReadStore, acquiring AcquiringReadStore) RequestQueries {
	return &requestQueriesImpl{
		borrowing: borrowing,
		booking:   booking,
		acquiring: acquiring,
	}
}

func validateStatusFilter(p ListParams) error {
	if p.Status == nil {
		return nil
	}
	if !request.Status(*p.Status).IsValid() {
		return ErrInvalidStatusFilter
	}
	return nil
}

func (q *requestQueriesImpl) ListBorrowingRequests(ctx context.Context, p ListParams) ([]BorrowingRequestView, PageMeta, error) {
	if err := validateStatusFilter(p); err != nil {
		return nil, PageMeta{}, err
	}
	items, total, err := q.borrowing.List(ctx, p)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return items, NewPageMeta(total, p), nil
}

func (q *requestQueriesImpl) ListBookingRequests(ctx context.Context, p ListParams) ([]BookingRequestView, PageMeta, error) {
	if err := validateStatusFilter(p); err != nil {
		return nil, PageMeta{}, err
	}
	items, total, err := q.booking.List(ctx, p)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return items, NewPageMeta(total, p), nil
}

func (q *requestQueriesImpl) ListAcquiringRequests(ctx context.Context, p ListParams) ([]AcquiringRequestView, PageMeta, error) {
	if err := validateStatusFilter(p); err != nil {
		return nil, PageMeta{}, err
	}
	items, total, err := q.acquiring.List(ctx, p)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return items, NewPageMeta(total, p), nil
}

func (q *requestQueriesImpl) ListMyBorrowingRequests(ctx context.Context, userID int64, p ListParams) ([]BorrowingRequestView, PageMeta, error) {
	if err := validateStatusFilter(p); err != nil {
		return nil, PageMeta{}, err
	}
	items, total, err := q.borrowing.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return items, NewPageMeta(total, p), nil
}

func (q *requestQueriesImpl) ListMyBookingRequests(ctx context.Context, userID int64, p ListParams) ([]BookingRequestView, PageMeta, error) {
	if err := validateStatusFilter(p); err != nil {
		return nil, PageMeta{}, err
	}
	items, total, err := q.booking.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return items, NewPageMeta(total, p), nil
}

func (q *requestQueriesImpl) ListMyAcquiringRequests(ctx context.Context, userID int64, p ListParams) ([]AcquiringRequestView, PageMeta, error) {
	if err := validateStatusFilter(p); err != nil {
		return nil, PageMeta{}, err
	}
	items, total, err := q.acquiring.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, PageMeta{}, err
	}
	return items, NewPageMeta(total, p), nil
}
