package tenant

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORM scopes enforcing the ownership chain
// User -> Customer -> Heater -> Maintenance. Every read and write on a
// domain entity goes through one of these; a row another user owns is
// indistinguishable from a row that does not exist.

// OwnedCustomers filters customers by their owning user.
func OwnedCustomers(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("customers.user_id = ?", userID)
	}
}

// OwnedHeaters joins heaters through their customer down to the owning user.
func OwnedHeaters(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN customers ON customers.id = heaters.customer_id").
			Where("customers.user_id = ?", userID)
	}
}

// OwnedMaintenances joins maintenances through heater and customer down to
// the owning user.
func OwnedMaintenances(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN heaters ON heaters.id = maintenances.heater_id").
			Joins("JOIN customers ON customers.id = heaters.customer_id").
			Where("customers.user_id = ?", userID)
	}
}
