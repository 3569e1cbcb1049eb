package components

import (
	"techfest-backend/internal/infra/repository"
	"techfest-backend/internal/usecase/commands"
	"techfest-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			repository.NewRegistrationRepository,
			fx.As(new(commands.RegistrationRepository)),
			fx.As(new(commands.AdminRepository)),
			fx.As(new(queries.RegistrationReadStore)),
		),
	),
)
