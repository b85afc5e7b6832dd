package maillog

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gympoint/backoffice/internal/models"
	"github.com/gympoint/backoffice/pkg/logctx"
	"github.com/gympoint/backoffice/pkg/tool"
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
	wg  sync.WaitGroup
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service { return &Service{db: db, log: log} }

// Save asynchronously persists a mail log entry. Nil input is ignored.
// Runs outside any policy transaction; a failed write is logged, never
// surfaced to the caller. Drain waits for in-flight writes at shutdown.
func (s *Service) Save(ctx context.Context, entry *models.MailLog) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if entry == nil {
			return
		}
		if entry.ID == "" {
			entry.ID = tool.GenerateUUIDV7()
		}
		if err := s.db.Save(entry).Error; err != nil {
			logctx.FromCtx(ctx, s.log).Errorf("failed to save mail log: %v", err)
		}
	}()
}

// Drain blocks until every pending Save has finished or ctx expires.
func (s *Service) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
