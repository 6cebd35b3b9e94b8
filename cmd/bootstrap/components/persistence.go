package components

import (
	"resource-desk/internal/infra/db"
	"resource-desk/internal/infra/readstore"
	"resource-desk/internal/infra/uow"
	"resource-desk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write side goes through the UnitOfWork; transactional repositories are
// constructed per transaction inside it, so only read stores are wired here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBorrowingReadStore,
			fx.As(new(queries.BorrowingReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewAcquiringReadStore,
			fx.As(new(queries.AcquiringReadStore)),
		),
		fx.Annotate(
			readstore.NewConfirmationReadStore,
			fx.As(new(queries.ConfirmationReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
