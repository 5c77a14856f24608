package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/heizlog/heizlog/internal/dto"
	"github.com/heizlog/heizlog/internal/models"
	"github.com/heizlog/heizlog/internal/tenant"
	"github.com/heizlog/heizlog/internal/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Sortable customer list columns, keyed by their API names.
var customerSortColumns = map[string]string{
	"name":      "name",
	"city":      "city",
	"zipCode":   "zip_code",
	"createdAt": "created_at",
}

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

func (s *CustomerService) Create(userID uuid.UUID, req *dto.CreateCustomerRequest) (*models.Customer, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	customer := models.Customer{
		ID:                      uuid.New(),
		UserID:                  userID,
		Name:                    req.Name,
		Street:                  req.Street,
		ZipCode:                 req.ZipCode,
		City:                    req.City,
		Phone:                   req.Phone,
		Email:                   normalizeEmail(req.Email),
		HeatingType:             req.HeatingType,
		AdditionalEnergySources: datatypes.NewJSONSlice(emptyIfNil(req.AdditionalEnergySources)),
		EnergyStorageSystems:    datatypes.NewJSONSlice(emptyIfNil(req.EnergyStorageSystems)),
		Notes:                   normalizeText(req.Notes),
	}

	if err := s.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &customer, nil
}

// List returns the user's customers, optionally filtered by a
// case-insensitive substring over name, street, city and phone, sorted by a
// whitelisted column.
func (s *CustomerService) List(userID uuid.UUID, search, sortBy, sortOrder string) ([]models.Customer, error) {
	column, ok := customerSortColumns[sortBy]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}

	query := s.db.Model(&models.Customer{}).Scopes(tenant.OwnedCustomers(userID))
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"(LOWER(name) LIKE ? OR LOWER(street) LIKE ? OR LOWER(city) LIKE ? OR phone LIKE ?)",
			like, like, like, "%"+search+"%",
		)
	}

	var customers []models.Customer
	err := query.
		Preload("Heaters", func(db *gorm.DB) *gorm.DB {
			return db.Order("next_maintenance ASC")
		}).
		Order(column + " " + direction).
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Get returns one owned customer with its heaters (soonest due first), each
// carrying its most recent maintenances.
func (s *CustomerService) Get(userID, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Scopes(tenant.OwnedCustomers(userID)).
		Preload("Heaters", func(db *gorm.DB) *gorm.DB {
			return db.Order("next_maintenance ASC")
		}).
		Preload("Heaters.Maintenances", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		First(&customer, "customers.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	for i := range customer.Heaters {
		customer.Heaters[i].Maintenances = recentMaintenances(customer.Heaters[i].Maintenances, 5)
	}
	return &customer, nil
}

// Update applies the patch field by field; UserID is never touched.
func (s *CustomerService) Update(userID, id uuid.UUID, req *dto.UpdateCustomerRequest) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Scopes(tenant.OwnedCustomers(userID)).First(&customer, "customers.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Street != nil {
		updates["street"] = *req.Street
	}
	if req.ZipCode != nil {
		updates["zip_code"] = *req.ZipCode
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = normalizeEmail(*req.Email)
	}
	if req.HeatingType != nil {
		updates["heating_type"] = *req.HeatingType
	}
	if req.AdditionalEnergySources != nil {
		updates["additional_energy_sources"] = datatypes.NewJSONSlice(emptyIfNil(*req.AdditionalEnergySources))
	}
	if req.EnergyStorageSystems != nil {
		updates["energy_storage_systems"] = datatypes.NewJSONSlice(emptyIfNil(*req.EnergyStorageSystems))
	}
	if req.Notes != nil {
		updates["notes"] = normalizeText(*req.Notes)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&customer).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update customer: %w", err)
		}
		if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
			return nil, fmt.Errorf("failed to reload customer: %w", err)
		}
	}
	return &customer, nil
}

// Delete removes the customer together with all its heaters and their
// maintenances in one transaction, so no orphans can remain.
func (s *CustomerService) Delete(userID, id uuid.UUID) error {
	var customer models.Customer
	err := s.db.Scopes(tenant.OwnedCustomers(userID)).First(&customer, "customers.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to fetch customer: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		heaterIDs := tx.Model(&models.Heater{}).Select("id").Where("customer_id = ?", id)
		if err := tx.Where("heater_id IN (?)", heaterIDs).Delete(&models.Maintenance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.Heater{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})
}

// normalizeEmail treats an empty or whitespace-only address as "no email".
func normalizeEmail(email string) *string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func recentMaintenances(all []models.Maintenance, n int) []models.Maintenance {
	if len(all) <= n {
		return all
	}
	return all[:n]
}
