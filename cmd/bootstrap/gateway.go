package bootstrap

import (
	"techfest-backend/internal/infra/gateway"
	"techfest-backend/internal/pkg/config"
	"techfest-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewGatewayClient(cfg config.Config) *gateway.Client {
	return gateway.NewClient(cfg.Razorpay)
}
