package mailer

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module wires the queue, the service and the dispatch worker.
var Module = fx.Options(
	fx.Provide(NewQueue),
	fx.Provide(NewService),
	fx.Invoke(runWorker),
)

func runWorker(lc fx.Lifecycle, log *zap.SugaredLogger, s *Service) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				if err := s.Run(ctx); err != nil {
					log.Errorf("mail worker stopped: %v", err)
				}
			}()
			log.Infow("mail worker started")
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
