package bootstrap

import (
	"clubhub/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	SubConfigOption,
)

// Sub-configs so consumers depend only on their own slice. Shared with the
// e2e harness, which injects config.Config itself.
var SubConfigOption = fx.Provide(
	func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	func(cfg config.Config) config.KioskConfig { return cfg.Kiosk },
	func(cfg config.Config) config.VisitConfig { return cfg.Visit },
	func(cfg config.Config) config.LendingConfig { return cfg.Lending },
	func(cfg config.Config) config.SweepConfig { return cfg.Sweep },
)
