package membership

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/gympoint/backoffice/internal/app/service/mailer"
	"github.com/gympoint/backoffice/internal/app/service/policy"
	models "github.com/gympoint/backoffice/internal/models"
	"github.com/gympoint/backoffice/internal/platform/clock"
	"github.com/gympoint/backoffice/pkg/config"
	"github.com/gympoint/backoffice/pkg/logctx"
	"github.com/gympoint/backoffice/pkg/metrics"
	"github.com/gympoint/backoffice/pkg/tool"
)

const pageSize = 10

// Service executes the membership lifecycle. Every write runs inside
// policy.Serialized, so concurrent operations on one student see each
// other's effects; the decision logic itself lives in lifecycle.go.
type Service struct {
	cfg  *config.Config
	db   *gorm.DB
	log  *zap.SugaredLogger
	clk  clock.Clock
	mail *mailer.Service
	loc  *time.Location
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger, clk clock.Clock, mail *mailer.Service) (*Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &Service{cfg: cfg, db: db, log: log, clk: clk, mail: mail, loc: loc}, nil
}

// Enroll creates a membership for a student with none. The row is created
// inactive; the external confirmation actor flips it via Activate. The
// confirmation mail is queued strictly after commit and never fails the
// enrollment.
func (s *Service) Enroll(ctx context.Context, studentID, planID string, startDate time.Time) (*models.Membership, error) {
	now := s.clk.Now()

	var created *models.Membership
	var evt *mailer.MembershipConfirmed

	err := policy.Serialized(ctx, s.db, studentID, func(tx *gorm.DB, student *models.Student) error {
		plan, err := loadPlan(ctx, tx, planID)
		if err != nil {
			return err
		}
		current, err := loadCurrent(ctx, tx, studentID)
		if err != nil {
			return err
		}
		if err := CheckEnroll(current, startDate, now, s.loc); err != nil {
			return err
		}
		// A lapsed membership row no longer blocks enrollment but still owns
		// the per-student slot; replace it.
		if current != nil {
			if err := tx.Delete(current).Error; err != nil {
				return fmt.Errorf("failed to remove lapsed membership: %w", err)
			}
		}

		terms := ComputeTerms(plan, startDate, s.loc)
		m := &models.Membership{
			ID:           tool.GenerateUUIDV7(),
			StudentID:    studentID,
			PlanID:       plan.ID,
			StartDate:    terms.StartDate,
			EndDate:      terms.EndDate,
			PriceCents:   terms.PriceCents,
			PlanSnapshot: datatypes.NewJSONType(terms.Snapshot),
		}
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("failed to create membership: %w", err)
		}

		created = m
		evt = &mailer.MembershipConfirmed{
			MembershipID: m.ID,
			StudentID:    student.ID,
			StudentName:  student.Name,
			StudentEmail: student.Email,
			PlanTitle:    plan.Title,
			StartDate:    m.StartDate,
			EndDate:      m.EndDate,
			PriceCents:   m.PriceCents,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.EnrollmentsTotal.Inc()
	logctx.FromCtx(ctx, s.log).Infow("membership_enrolled",
		"student_id", studentID, "plan_id", planID, "end_date", created.EndDate)
	s.mail.EnqueueMembershipConfirmed(ctx, evt)
	return created, nil
}

// Renew rewrites the student's existing inactive membership in place with
// freshly computed terms. It never creates a second row.
func (s *Service) Renew(ctx context.Context, studentID, planID string, startDate time.Time) (*models.Membership, error) {
	now := s.clk.Now()

	var updated *models.Membership
	err := policy.Serialized(ctx, s.db, studentID, func(tx *gorm.DB, _ *models.Student) error {
		current, err := loadCurrent(ctx, tx, studentID)
		if err != nil {
			return err
		}
		if err := CheckRenew(current, startDate, now, s.loc); err != nil {
			return err
		}
		plan, err := loadPlan(ctx, tx, planID)
		if err != nil {
			return err
		}

		terms := ComputeTerms(plan, startDate, s.loc)
		current.PlanID = plan.ID
		current.StartDate = terms.StartDate
		current.EndDate = terms.EndDate
		current.PriceCents = terms.PriceCents
		current.PlanSnapshot = datatypes.NewJSONType(terms.Snapshot)
		if err := tx.Save(current).Error; err != nil {
			return fmt.Errorf("failed to update membership: %w", err)
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RenewalsTotal.Inc()
	logctx.FromCtx(ctx, s.log).Infow("membership_renewed",
		"student_id", studentID, "plan_id", planID, "end_date", updated.EndDate)
	return updated, nil
}

// Cancel removes the student's membership unconditionally.
func (s *Service) Cancel(ctx context.Context, studentID string) error {
	err := policy.Serialized(ctx, s.db, studentID, func(tx *gorm.DB, _ *models.Student) error {
		res := tx.Where("student_id = ?", studentID).Delete(&models.Membership{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete membership: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return policy.ErrNotEnrolled
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.CancellationsTotal.Inc()
	logctx.FromCtx(ctx, s.log).Infow("membership_cancelled", "student_id", studentID)
	return nil
}

// Activate confirms a membership. Reserved for the external confirmation
// actor (front desk or payment hook); enrollment never sets the flag itself.
func (s *Service) Activate(ctx context.Context, membershipID string) error {
	var m models.Membership
	if err := s.db.WithContext(ctx).Where("id = ?", membershipID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return policy.ErrNotEnrolled
		}
		return fmt.Errorf("failed to load membership: %w", err)
	}

	return policy.Serialized(ctx, s.db, m.StudentID, func(tx *gorm.DB, _ *models.Student) error {
		res := tx.Model(&models.Membership{}).Where("id = ?", membershipID).Update("active", true)
		if res.Error != nil {
			return fmt.Errorf("failed to activate membership: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return policy.ErrNotEnrolled
		}
		return nil
	})
}

// Detail is the read projection: membership plus the names listing pages
// show.
type Detail struct {
	*models.Membership
	StudentName string `json:"student_name"`
	PlanTitle   string `json:"plan_title"`
}

// Get returns the student's membership with display fields resolved from
// the frozen snapshot.
func (s *Service) Get(ctx context.Context, studentID string) (*Detail, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).Where("id = ?", studentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policy.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	m, err := loadCurrent(ctx, s.db, studentID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, policy.ErrNotEnrolled
	}
	return s.toDetail(m, &student), nil
}

// List returns a page of memberships (10 per page) with the total count.
func (s *Service) List(ctx context.Context, page int) ([]*Detail, int64, error) {
	if page < 1 {
		page = 1
	}

	q := s.db.WithContext(ctx).Model(&models.Membership{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count memberships: %w", err)
	}

	var rows []*models.Membership
	if err := q.Order("created_at").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list memberships: %w", err)
	}
	if len(rows) == 0 {
		return nil, total, nil
	}

	studentIDs := lo.Map(rows, func(m *models.Membership, _ int) string { return m.StudentID })
	var students []*models.Student
	if err := s.db.WithContext(ctx).Where("id IN ?", studentIDs).Find(&students).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to load students: %w", err)
	}
	byID := lo.KeyBy(students, func(st *models.Student) string { return st.ID })

	details := lo.Map(rows, func(m *models.Membership, _ int) *Detail {
		return s.toDetail(m, byID[m.StudentID])
	})
	return details, total, nil
}

func (s *Service) toDetail(m *models.Membership, student *models.Student) *Detail {
	d := &Detail{Membership: m}
	if student != nil {
		d.StudentName = student.Name
	}
	if snap := m.GetPlanSnapshot(); snap != nil {
		d.PlanTitle = snap.Title
	}
	return d
}

func loadPlan(ctx context.Context, tx *gorm.DB, planID string) (*models.Plan, error) {
	var plan models.Plan
	if err := tx.WithContext(ctx).Where("id = ?", planID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policy.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return &plan, nil
}

// loadCurrent returns the student's membership, nil when none exists.
func loadCurrent(ctx context.Context, tx *gorm.DB, studentID string) (*models.Membership, error) {
	var m models.Membership
	err := tx.WithContext(ctx).Where("student_id = ?", studentID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	return &m, nil
}
