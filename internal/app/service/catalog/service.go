package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gympoint/backoffice/internal/app/service/policy"
	models "github.com/gympoint/backoffice/internal/models"
	"github.com/gympoint/backoffice/pkg/tool"
)

// Service owns the Student and Plan records. The policy services treat it as
// the identity store: GetStudent/GetPlan plus the CRUD the back office needs.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type StudentInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (in *StudentInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("name and email are required")
	}
	return nil
}

func (s *Service) CreateStudent(ctx context.Context, in *StudentInput) (*models.Student, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	student := &models.Student{
		ID:    tool.GenerateUUIDV7(),
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
	}
	if err := s.db.WithContext(ctx).Create(student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, policy.ErrDuplicateStudentEmail
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return student, nil
}

func (s *Service) UpdateStudent(ctx context.Context, id string, in *StudentInput) (*models.Student, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	student.Name = strings.TrimSpace(in.Name)
	student.Email = strings.TrimSpace(in.Email)
	if err := s.db.WithContext(ctx).Save(student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, policy.ErrDuplicateStudentEmail
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return student, nil
}

func (s *Service) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policy.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	return &student, nil
}

// ListStudents returns students whose name contains q (all when q is empty),
// ordered by name.
func (s *Service) ListStudents(ctx context.Context, q string) ([]*models.Student, error) {
	tx := s.db.WithContext(ctx).Model(&models.Student{}).Order("name")
	if q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}
	var students []*models.Student
	if err := tx.Find(&students).Error; err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

type PlanInput struct {
	Title          string `json:"title"`
	DurationMonths int    `json:"duration_months"`
	PriceCents     int64  `json:"price_cents"`
}

func (in *PlanInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if in.DurationMonths <= 0 || in.PriceCents <= 0 {
		return policy.ErrInvalidPlan
	}
	return nil
}

func (s *Service) CreatePlan(ctx context.Context, in *PlanInput) (*models.Plan, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	plan := &models.Plan{
		ID:             tool.GenerateUUIDV7(),
		Title:          strings.TrimSpace(in.Title),
		DurationMonths: in.DurationMonths,
		PriceCents:     in.PriceCents,
	}
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, policy.ErrDuplicatePlanTitle
		}
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	return plan, nil
}

// UpdatePlan edits the template. Existing memberships are never touched:
// price and end date were frozen on each membership at enrollment time.
func (s *Service) UpdatePlan(ctx context.Context, id string, in *PlanInput) (*models.Plan, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	plan.Title = strings.TrimSpace(in.Title)
	plan.DurationMonths = in.DurationMonths
	plan.PriceCents = in.PriceCents
	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, policy.ErrDuplicatePlanTitle
		}
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	return plan, nil
}

func (s *Service) DeletePlan(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Plan{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete plan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return policy.ErrPlanNotFound
	}
	return nil
}

func (s *Service) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policy.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return &plan, nil
}

func (s *Service) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	var plans []*models.Plan
	if err := s.db.WithContext(ctx).Order("duration_months").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}
