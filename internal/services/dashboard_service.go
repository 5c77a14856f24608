package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/heizlog/heizlog/internal/dto"
	"github.com/heizlog/heizlog/internal/models"
	"github.com/heizlog/heizlog/internal/tenant"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Stats computes the four dashboard counts. The queries are independent and
// run concurrently; they are individually consistent but not mutually
// snapshot-consistent, which is acceptable for a dashboard.
//
// Overdue means nextMaintenance strictly before now; upcoming means
// nextMaintenance in [now, now+30d], both ends inclusive.
func (s *DashboardService) Stats(userID uuid.UUID) (*dto.DashboardStats, error) {
	now := time.Now()
	horizon := now.AddDate(0, 0, 30)

	var stats dto.DashboardStats
	var g errgroup.Group

	g.Go(func() error {
		return s.db.Model(&models.Customer{}).
			Scopes(tenant.OwnedCustomers(userID)).
			Count(&stats.TotalCustomers).Error
	})
	g.Go(func() error {
		return s.db.Model(&models.Heater{}).
			Scopes(tenant.OwnedHeaters(userID)).
			Count(&stats.TotalHeaters).Error
	})
	g.Go(func() error {
		return s.db.Model(&models.Heater{}).
			Scopes(tenant.OwnedHeaters(userID)).
			Where("heaters.next_maintenance < ?", now).
			Count(&stats.OverdueMaintenances).Error
	})
	g.Go(func() error {
		return s.db.Model(&models.Heater{}).
			Scopes(tenant.OwnedHeaters(userID)).
			Where("heaters.next_maintenance >= ? AND heaters.next_maintenance <= ?", now, horizon).
			Count(&stats.UpcomingMaintenances).Error
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	return &stats, nil
}
