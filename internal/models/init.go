package models

import (
	"strings"

	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDefaultOwner bootstraps a demo business with an owner account when the
// staff table is empty. Meant for first boot and local development.
func InitDefaultOwner(email, password string) error {
	var count int64
	DB.Model(&Staff{}).Count(&count)
	if count > 0 {
		return nil
	}

	if email == "" {
		email = "owner@example.com"
	}
	if password == "" {
		password = "owner123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		business := Business{
			Slug:     "demo",
			Name:     "Demo Isletme",
			Category: constants.BusinessCategoryRestaurant,
			IsActive: true,
		}
		if err := tx.Create(&business).Error; err != nil {
			return err
		}
		setting := BusinessSetting{
			BusinessID:      business.ID,
			AcceptingOrders: true,
			Currency:        constants.SiteCurrencyDefault,
		}
		if err := tx.Create(&setting).Error; err != nil {
			return err
		}
		owner := Staff{
			BusinessID:   business.ID,
			Email:        strings.ToLower(strings.TrimSpace(email)),
			Name:         "Owner",
			PasswordHash: string(hash),
			Role:         constants.StaffRoleOwner,
			IsActive:     true,
		}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}

		if password == "owner123" {
			logger.Warnw("default_owner_created_with_default_password", "email", owner.Email)
			logger.Warnw("default_owner_password_change_required", "email", owner.Email)
		} else {
			logger.Warnw("default_owner_created", "email", owner.Email, "password_hidden", true)
		}
		return nil
	})
}
