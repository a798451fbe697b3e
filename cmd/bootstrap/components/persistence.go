package components

import (
	"hotelres/internal/infra/db"
	"hotelres/internal/infra/payment"
	"hotelres/internal/infra/readstore"
	"hotelres/internal/infra/uow"
	"hotelres/internal/usecase/commands"
	"hotelres/internal/usecase/queries"
	"hotelres/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Hotel
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.UserReadStore)),
		),
		// Payment gateway
		fx.Annotate(
			payment.NewTossClient,
			fx.As(new(payment.Gateway)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
