package components

import (
	"clubhub/internal/infra/db"
	"clubhub/internal/infra/readstore"
	repo_impl "clubhub/internal/infra/repository"
	"clubhub/internal/usecase/commands"
	"clubhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewMemberRepository,
			fx.As(new(commands.MemberRepository)),
		),
		fx.Annotate(
			repo_impl.NewVisitRepository,
			fx.As(new(commands.VisitRepository)),
		),
		fx.Annotate(
			repo_impl.NewKioskTokenRepository,
			fx.As(new(commands.KioskTokenRepository)),
		),
		fx.Annotate(
			repo_impl.NewItemRepository,
			fx.As(new(commands.ItemRepository)),
		),
		fx.Annotate(
			repo_impl.NewLendingRepository,
			fx.As(new(commands.LendingRepository)),
		),
		fx.Annotate(
			repo_impl.NewQueueRepository,
			fx.As(new(commands.QueueRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewVisitReadStore,
			fx.As(new(queries.VisitReadStore)),
		),
		fx.Annotate(
			readstore.NewLendingReadStore,
			fx.As(new(queries.LendingReadStore)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
