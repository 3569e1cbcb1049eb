package bootstrap

import (
	"techfest-backend/internal/pkg/config"
	"techfest-backend/internal/pkg/identity"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		NewIdentityService,
	),
)

func NewIdentityService(cfg config.Config) *identity.Service {
	return identity.NewService(cfg.Auth.JWTSecret)
}
