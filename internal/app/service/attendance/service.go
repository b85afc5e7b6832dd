package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gympoint/backoffice/internal/app/service/policy"
	models "github.com/gympoint/backoffice/internal/models"
	"github.com/gympoint/backoffice/internal/platform/clock"
	"github.com/gympoint/backoffice/pkg/config"
	"github.com/gympoint/backoffice/pkg/logctx"
	"github.com/gympoint/backoffice/pkg/metrics"
	"github.com/gympoint/backoffice/pkg/tool"
	"github.com/gympoint/backoffice/pkg/types"
)

const pageSize = 10

// Service records and lists attendance. RecordCheckin runs under the
// per-student lock so it is mutually exclusive with membership operations on
// the same student; window checks live in policy.go.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
	clk clock.Clock
	loc *time.Location
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger, clk clock.Clock) (*Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &Service{cfg: cfg, db: db, log: log, clk: clk, loc: loc}, nil
}

// RecordCheckin validates and persists a check-in attempt at "now".
func (s *Service) RecordCheckin(ctx context.Context, studentID string) (*models.Checkin, error) {
	now := s.clk.Now()

	var created *models.Checkin
	err := policy.Serialized(ctx, s.db, studentID, func(tx *gorm.DB, _ *models.Student) error {
		var m models.Membership
		err := tx.WithContext(ctx).Where("student_id = ?", studentID).First(&m).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return CheckMembership(nil)
		case err != nil:
			return fmt.Errorf("failed to load membership: %w", err)
		}
		if err := CheckMembership(&m); err != nil {
			return err
		}

		// One range scan covers both caps: today's calendar day always lies
		// inside the trailing window.
		windowStart := now.Add(-time.Duration(s.cfg.Checkin.WindowDays) * 24 * time.Hour)
		var history []time.Time
		if err := tx.WithContext(ctx).Model(&models.Checkin{}).
			Where("student_id = ? AND created_at >= ? AND created_at <= ?", studentID, windowStart, now).
			Order("created_at").
			Pluck("created_at", &history).Error; err != nil {
			return fmt.Errorf("failed to load checkin history: %w", err)
		}
		if err := CheckHistory(history, now, s.loc, s.cfg.Checkin.WeeklyLimit); err != nil {
			return err
		}

		c := &models.Checkin{
			ID:        tool.GenerateUUIDV7(),
			StudentID: studentID,
			Day:       models.DayKey(now, s.loc),
			CreatedAt: now,
		}
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("failed to create checkin: %w", err)
		}
		created = c
		return nil
	})
	if err != nil {
		metrics.CheckinsDeniedTotal.WithLabelValues(policy.DenialReason(err)).Inc()
		return nil, err
	}

	metrics.CheckinsRecordedTotal.Inc()
	logctx.FromCtx(ctx, s.log).Infow("checkin_recorded", "student_id", studentID, "day", created.Day)
	return created, nil
}

// ListResult is the check-in history page with the context the front desk
// screen shows alongside it.
type ListResult struct {
	Items      []*models.Checkin  `json:"items"`
	Total      int64              `json:"total"`
	Student    *models.Student    `json:"student"`
	Membership *models.Membership `json:"membership"`
}

// ListCheckins returns a page (10 per page) of the student's check-ins,
// newest first. Requires the student to exist and to have a membership.
func (s *Service) ListCheckins(ctx context.Context, studentID string, page int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}

	var student models.Student
	if err := s.db.WithContext(ctx).Where("id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policy.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	var m models.Membership
	if err := s.db.WithContext(ctx).Where("student_id = ?", studentID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policy.ErrNotEnrolled
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}

	q := s.db.WithContext(ctx).Model(&models.Checkin{}).Where("student_id = ?", studentID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count checkins: %w", err)
	}
	var items []*models.Checkin
	if err := q.Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list checkins: %w", err)
	}

	return &ListResult{Items: items, Total: total, Student: &student, Membership: &m}, nil
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := lo.Map(w.filters, func(f *types.CommonFilter, _ int) clause.Expression { return f })
	clause.And(exprs...).Build(builder)
}

type ScanCheckinsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanCheckinsResponse struct {
	Items []*models.Checkin `json:"items"`
	Total int64             `json:"total"`
}

// ScanCheckins implements the filtered admin listing.
func (s *Service) ScanCheckins(ctx context.Context, req *ScanCheckinsRequest) (*ScanCheckinsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = pageSize
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.Checkin{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count checkins: %w", err)
	}

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if req.SortBy != "" {
		q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	}

	var rows []*models.Checkin
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to scan checkins: %w", err)
	}
	return &ScanCheckinsResponse{Items: rows, Total: total}, nil
}
