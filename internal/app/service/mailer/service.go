package mailer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/gympoint/backoffice/internal/app/service/maillog"
	"github.com/gympoint/backoffice/internal/models"
	"github.com/gympoint/backoffice/pkg/config"
	"github.com/gympoint/backoffice/pkg/logctx"
)

// Service is the notification port for "membership confirmed" events.
// Enqueue is fire-and-forget: it runs strictly after the enrollment
// transaction commits, and its failure is logged, never propagated.
type Service struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	queue   Queue
	mailLog *maillog.Service
}

func NewService(cfg *config.Config, log *zap.SugaredLogger, q Queue, ml *maillog.Service) *Service {
	return &Service{cfg: cfg, log: log, queue: q, mailLog: ml}
}

// NewQueue builds the configured queue backend.
func NewQueue(cfg *config.Config, log *zap.SugaredLogger) Queue {
	if cfg.Mailer.Backend == "redis" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Mailer.RedisAddr})
		log.Infow("mail queue using redis", "addr", cfg.Mailer.RedisAddr, "key", cfg.Mailer.QueueKey)
		return NewRedisQueue(client, cfg.Mailer.QueueKey)
	}
	return NewMemoryQueue(cfg.Mailer.Buffer)
}

// EnqueueMembershipConfirmed hands the event to the mail queue. The bounded
// publish timeout keeps a full queue from stalling the request path.
func (s *Service) EnqueueMembershipConfirmed(ctx context.Context, evt *MembershipConfirmed) {
	if evt == nil {
		return
	}
	body, err := json.Marshal(evt)
	if err != nil {
		logctx.FromCtx(ctx, s.log).Errorf("failed to marshal confirmation mail event: %v", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := s.queue.Publish(pubCtx, body); err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("failed to enqueue confirmation mail",
			"student_id", evt.StudentID, "err", err)
		s.mailLog.Save(ctx, &models.MailLog{
			StudentID: evt.StudentID,
			Email:     evt.StudentEmail,
			Status:    models.MailLogStatusFailed,
			Payload:   datatypes.JSON(body),
		})
		return
	}
	s.mailLog.Save(ctx, &models.MailLog{
		StudentID: evt.StudentID,
		Email:     evt.StudentEmail,
		Status:    models.MailLogStatusQueued,
		Payload:   datatypes.JSON(body),
	})
}

// Run consumes events until ctx is cancelled. Delivery to the actual mail
// provider lives outside this repo; the worker records the hand-off.
func (s *Service) Run(ctx context.Context) error {
	msgs, err := s.queue.Consume(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case body, ok := <-msgs:
			if !ok {
				return nil
			}
			s.handle(ctx, body)
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Service) handle(ctx context.Context, body []byte) {
	var evt MembershipConfirmed
	if err := json.Unmarshal(body, &evt); err != nil {
		s.log.Errorf("dropping malformed confirmation mail event: %v", err)
		return
	}
	s.log.Infow("confirmation_mail_dispatched",
		"student_id", evt.StudentID,
		"email", evt.StudentEmail,
		"plan", evt.PlanTitle,
		"start_date", evt.StartDate,
		"end_date", evt.EndDate,
		"price_cents", evt.PriceCents,
	)
	s.mailLog.Save(ctx, &models.MailLog{
		StudentID: evt.StudentID,
		Email:     evt.StudentEmail,
		Status:    models.MailLogStatusDelivered,
		Payload:   datatypes.JSON(body),
	})
}
