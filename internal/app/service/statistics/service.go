package statistics

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	models "github.com/gympoint/backoffice/internal/models"
)

// Statistic types served to the admin dashboard.
type StatisticType string

const (
	// Attendance volume per calendar day.
	StatisticTypeDailyCheckinCount StatisticType = "daily_checkin_count"
	// Memberships created per calendar day.
	StatisticTypeDailyNewMembershipCount StatisticType = "daily_new_membership_count"
	// Current totals.
	StatisticTypeTotalMembershipCount  StatisticType = "total_membership_count"
	StatisticTypeActiveMembershipCount StatisticType = "active_membership_count"
)

var allStatisticTypes = []StatisticType{
	StatisticTypeDailyCheckinCount,
	StatisticTypeDailyNewMembershipCount,
	StatisticTypeTotalMembershipCount,
	StatisticTypeActiveMembershipCount,
}

type StatisticDataItem struct {
	Date  string `json:"date,omitempty"`
	Value int64  `json:"value"`
}

type StatisticRequest struct {
	DataItems []StatisticType `json:"data_items"`
}

type StatisticResponse struct {
	DataItems map[StatisticType][]StatisticDataItem `json:"data_items"`
}

// Service provides statistics operations
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

// GetStatistics resolves each requested series; an empty request returns all
// of them.
func (s *Service) GetStatistics(ctx context.Context, req *StatisticRequest) (*StatisticResponse, error) {
	wanted := allStatisticTypes
	if req != nil && len(req.DataItems) > 0 {
		wanted = req.DataItems
	}

	res := &StatisticResponse{DataItems: make(map[StatisticType][]StatisticDataItem, len(wanted))}
	for _, st := range wanted {
		var (
			items []StatisticDataItem
			err   error
		)
		switch st {
		case StatisticTypeDailyCheckinCount:
			items, err = s.getDailyCheckinCount(ctx)
		case StatisticTypeDailyNewMembershipCount:
			items, err = s.getDailyNewMembershipCount(ctx)
		case StatisticTypeTotalMembershipCount:
			items, err = s.getTotalMembershipCount(ctx)
		case StatisticTypeActiveMembershipCount:
			items, err = s.getActiveMembershipCount(ctx)
		default:
			return nil, fmt.Errorf("unknown statistic type: %s", st)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to compute %s: %w", st, err)
		}
		res.DataItems[st] = items
	}
	return res, nil
}

func (s *Service) getDailyCheckinCount(ctx context.Context) ([]StatisticDataItem, error) {
	var results []StatisticDataItem
	// The day column already carries the deployment-timezone calendar day.
	err := s.db.WithContext(ctx).Table((models.Checkin{}).TableName()).
		Select("day as date, count(*) as value").
		Group("day").
		Order("day").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getDailyNewMembershipCount(ctx context.Context) ([]StatisticDataItem, error) {
	var results []StatisticDataItem
	err := s.db.WithContext(ctx).Table((models.Membership{}).TableName()).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, count(*) as value").
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getTotalMembershipCount(ctx context.Context) ([]StatisticDataItem, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Membership{}).Count(&count).Error; err != nil {
		return nil, err
	}
	return []StatisticDataItem{{Value: count}}, nil
}

func (s *Service) getActiveMembershipCount(ctx context.Context) ([]StatisticDataItem, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Membership{}).
		Where("active = ?", true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	return []StatisticDataItem{{Value: count}}, nil
}
