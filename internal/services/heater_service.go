package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/heizlog/heizlog/internal/dto"
	"github.com/heizlog/heizlog/internal/models"
	"github.com/heizlog/heizlog/internal/scheduler"
	"github.com/heizlog/heizlog/internal/tenant"
	"github.com/heizlog/heizlog/internal/validation"
	"gorm.io/gorm"
)

var ErrHeaterNotFound = errors.New("heater not found")

type HeaterService struct {
	db *gorm.DB
}

func NewHeaterService(db *gorm.DB) *HeaterService {
	return &HeaterService{db: db}
}

// Create stores a new heater. LastMaintenance defaults to "now" when absent;
// NextMaintenance is always derived, never taken from the request.
func (s *HeaterService) Create(userID uuid.UUID, req *dto.CreateHeaterRequest) (*models.Heater, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}
	var customer models.Customer
	err = s.db.Scopes(tenant.OwnedCustomers(userID)).First(&customer, "customers.id = ?", customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	installationDate, err := parseDatePtr(req.InstallationDate)
	if err != nil {
		return nil, err
	}
	lastMaintenancePtr, err := parseDatePtr(req.LastMaintenance)
	if err != nil {
		return nil, err
	}

	lastMaintenance := time.Now()
	if lastMaintenancePtr != nil {
		lastMaintenance = *lastMaintenancePtr
	}

	heater := models.Heater{
		ID:                  uuid.New(),
		CustomerID:          customerID,
		Model:               req.Model,
		SerialNumber:        req.SerialNumber,
		InstallationDate:    installationDate,
		MaintenanceInterval: req.MaintenanceInterval,
		LastMaintenance:     &lastMaintenance,
		NextMaintenance:     scheduler.NextDue(lastMaintenance, req.MaintenanceInterval),
	}

	if err := s.db.Create(&heater).Error; err != nil {
		return nil, fmt.Errorf("failed to create heater: %w", err)
	}

	return &heater, nil
}

// ListByCustomer returns the customer's heaters, soonest due first, each with
// its last 5 maintenances. The customer ownership check runs first so a
// foreign customer id yields ErrCustomerNotFound, never an empty list.
func (s *HeaterService) ListByCustomer(userID, customerID uuid.UUID) ([]models.Heater, error) {
	var customer models.Customer
	err := s.db.Scopes(tenant.OwnedCustomers(userID)).First(&customer, "customers.id = ?", customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	var heaters []models.Heater
	err = s.db.Where("customer_id = ?", customerID).
		Preload("Maintenances", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Order("next_maintenance ASC").
		Find(&heaters).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list heaters: %w", err)
	}

	for i := range heaters {
		heaters[i].Maintenances = recentMaintenances(heaters[i].Maintenances, 5)
	}
	return heaters, nil
}

// Get returns one owned heater with its customer and full maintenance
// history, newest first.
func (s *HeaterService) Get(userID, id uuid.UUID) (*models.Heater, error) {
	var heater models.Heater
	err := s.db.Scopes(tenant.OwnedHeaters(userID)).
		Preload("Customer").
		Preload("Maintenances", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		First(&heater, "heaters.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeaterNotFound
		}
		return nil, fmt.Errorf("failed to fetch heater: %w", err)
	}
	return &heater, nil
}

// Update applies the patch and recomputes NextMaintenance if the interval or
// the last maintenance date changed. The reference date is the new
// LastMaintenance if given, else the stored one, else "now"; the interval is
// the new one if given, else the stored one.
func (s *HeaterService) Update(userID, id uuid.UUID, req *dto.UpdateHeaterRequest) (*models.Heater, error) {
	var heater models.Heater
	err := s.db.Scopes(tenant.OwnedHeaters(userID)).First(&heater, "heaters.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeaterNotFound
		}
		return nil, fmt.Errorf("failed to fetch heater: %w", err)
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.SerialNumber != nil {
		updates["serial_number"] = normalizeText(*req.SerialNumber)
	}
	if req.InstallationDate != nil {
		installationDate, err := parseDatePtr(req.InstallationDate)
		if err != nil {
			return nil, err
		}
		updates["installation_date"] = installationDate
	}
	if req.MaintenanceInterval != nil {
		updates["maintenance_interval"] = *req.MaintenanceInterval
	}

	var newLast *time.Time
	if req.LastMaintenance != nil {
		newLast, err = parseDatePtr(req.LastMaintenance)
		if err != nil {
			return nil, err
		}
		updates["last_maintenance"] = newLast
	}

	// Reschedule only when one of the two derivation inputs is in the patch.
	if req.MaintenanceInterval != nil || req.LastMaintenance != nil {
		interval := heater.MaintenanceInterval
		if req.MaintenanceInterval != nil {
			interval = *req.MaintenanceInterval
		}

		reference := time.Now()
		if newLast != nil {
			reference = *newLast
		} else if heater.LastMaintenance != nil {
			reference = *heater.LastMaintenance
		}

		updates["next_maintenance"] = scheduler.NextDue(reference, interval)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&heater).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update heater: %w", err)
		}
		if err := s.db.First(&heater, "id = ?", id).Error; err != nil {
			return nil, fmt.Errorf("failed to reload heater: %w", err)
		}
	}
	return &heater, nil
}

// Delete removes the heater and its maintenances in one transaction.
func (s *HeaterService) Delete(userID, id uuid.UUID) error {
	var heater models.Heater
	err := s.db.Scopes(tenant.OwnedHeaters(userID)).First(&heater, "heaters.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHeaterNotFound
		}
		return fmt.Errorf("failed to fetch heater: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("heater_id = ?", id).Delete(&models.Maintenance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&heater).Error
	})
}

// parseDatePtr parses an optional RFC 3339 date string. Validation has
// already checked the format; a parse failure here is still an error.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}
	return &t, nil
}
