package maillog

import "go.uber.org/fx"

// Module exposes the mail log service via Fx and drains pending writes on
// shutdown.
var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(registerDrain),
)

func registerDrain(lc fx.Lifecycle, s *Service) {
	lc.Append(fx.Hook{
		OnStop: s.Drain,
	})
}
