package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heizlog/heizlog/internal/dto"
	"github.com/heizlog/heizlog/internal/models"
	"github.com/heizlog/heizlog/internal/scheduler"
	"github.com/heizlog/heizlog/internal/tenant"
	"github.com/heizlog/heizlog/internal/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrMaintenanceNotFound = errors.New("maintenance not found")

// PhotoStore is the slice of the photo adapter the maintenance service needs
// for best-effort cleanup on delete.
type PhotoStore interface {
	Delete(ctx context.Context, url string) error
}

type MaintenanceService struct {
	db     *gorm.DB
	photos PhotoStore
}

func NewMaintenanceService(db *gorm.DB, photos PhotoStore) *MaintenanceService {
	return &MaintenanceService{db: db, photos: photos}
}

// Create inserts the maintenance record and moves the heater's
// LastMaintenance/NextMaintenance forward in a single transaction: no read
// may ever observe one without the other.
func (s *MaintenanceService) Create(userID uuid.UUID, req *dto.CreateMaintenanceRequest) (*models.Maintenance, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	heaterID, err := uuid.Parse(req.HeaterID)
	if err != nil {
		return nil, fmt.Errorf("invalid heater id: %w", err)
	}

	var heater models.Heater
	err = s.db.Scopes(tenant.OwnedHeaters(userID)).First(&heater, "heaters.id = ?", heaterID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeaterNotFound
		}
		return nil, fmt.Errorf("failed to fetch heater: %w", err)
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	maintenance := models.Maintenance{
		ID:       uuid.New(),
		HeaterID: heaterID,
		UserID:   userID,
		Date:     date,
		Notes:    req.Notes,
		Photos:   datatypes.NewJSONSlice(emptyIfNil(req.Photos)),
	}
	nextMaintenance := scheduler.NextDue(date, heater.MaintenanceInterval)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&maintenance).Error; err != nil {
			return err
		}
		return tx.Model(&models.Heater{}).Where("id = ?", heaterID).Updates(map[string]interface{}{
			"last_maintenance": date,
			"next_maintenance": nextMaintenance,
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance: %w", err)
	}

	heater.LastMaintenance = &date
	heater.NextMaintenance = nextMaintenance
	maintenance.Heater = &heater
	return &maintenance, nil
}

// ListByHeater returns the heater's maintenance history, newest first. The
// heater ownership check runs first so a foreign heater id yields
// ErrHeaterNotFound, never an empty list.
func (s *MaintenanceService) ListByHeater(userID, heaterID uuid.UUID) ([]models.Maintenance, error) {
	var heater models.Heater
	err := s.db.Scopes(tenant.OwnedHeaters(userID)).First(&heater, "heaters.id = ?", heaterID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeaterNotFound
		}
		return nil, fmt.Errorf("failed to fetch heater: %w", err)
	}

	var maintenances []models.Maintenance
	err = s.db.Where("heater_id = ?", heaterID).Order("date DESC").Find(&maintenances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenances: %w", err)
	}
	return maintenances, nil
}

func (s *MaintenanceService) Get(userID, id uuid.UUID) (*models.Maintenance, error) {
	var maintenance models.Maintenance
	err := s.db.Scopes(tenant.OwnedMaintenances(userID)).
		Preload("Heater").
		Preload("Heater.Customer").
		First(&maintenance, "maintenances.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaintenanceNotFound
		}
		return nil, fmt.Errorf("failed to fetch maintenance: %w", err)
	}
	return &maintenance, nil
}

// Delete removes the record and best-effort-deletes its photos from storage.
// Photo failures are logged per URL and never abort the record deletion.
func (s *MaintenanceService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var maintenance models.Maintenance
	err := s.db.Scopes(tenant.OwnedMaintenances(userID)).First(&maintenance, "maintenances.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaintenanceNotFound
		}
		return fmt.Errorf("failed to fetch maintenance: %w", err)
	}

	if s.photos != nil {
		for _, url := range maintenance.Photos {
			if err := s.photos.Delete(ctx, url); err != nil {
				slog.Error("failed to delete maintenance photo",
					"maintenance_id", id.String(), "url", url, "error", err)
			}
		}
	}

	if err := s.db.Delete(&maintenance).Error; err != nil {
		return fmt.Errorf("failed to delete maintenance: %w", err)
	}
	return nil
}
