package attendance

import "go.uber.org/fx"

// Module exposes the attendance service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
