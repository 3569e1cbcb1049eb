package bootstrap

import (
	"context"
	"log/slog"

	"techfest-backend/internal/domain/catalog"
	"techfest-backend/internal/infra/mailer"
	"techfest-backend/internal/pkg/config"
	"techfest-backend/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailerPool,
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Notifier)),
		),
	),
	fx.Invoke(StartUsageResetScheduler),
)

func NewMailerPool(cfg config.Config) *mailer.Pool {
	return mailer.NewPool(cfg.Email)
}

func NewMailer(pool *mailer.Pool, cat *catalog.Catalog, cfg config.Config) *mailer.Mailer {
	return mailer.NewMailer(pool, cat, cfg.Email)
}

// StartUsageResetScheduler resets the per-account daily send counters at
// midnight, matching the provider's daily sending quota window.
func StartUsageResetScheduler(lc fx.Lifecycle, pool *mailer.Pool) {
	c := cron.New()
	_, err := c.AddFunc("0 0 * * *", func() {
		pool.ResetUsage()
		slog.Info("mail account usage counters reset")
	})
	if err != nil {
		panic("invalid usage reset schedule: " + err.Error())
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
}
