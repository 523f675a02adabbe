package main

import (
	"flag"
	"strings"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/config"
	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/logger"
	"github.com/tikprofil/tikprofil-api/internal/models"

	"gorm.io/gorm"
)

// Seeds a demo menu into an existing business. Intended for local development
// and manual testing against a fresh database.
func main() {
	var slug string
	flag.StringVar(&slug, "slug", "demo", "slug of the business to seed")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns: cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns: cfg.Database.Pool.MaxIdleConns,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}
	if err := models.InitDefaultOwner(cfg.Seed.OwnerEmail, cfg.Seed.OwnerPassword); err != nil {
		stdLog.Fatalf("default owner bootstrap failed: %v", err)
	}

	var business models.Business
	if err := models.DB.Where("slug = ?", strings.ToLower(slug)).First(&business).Error; err != nil {
		stdLog.Fatalf("business %q not found: %v", slug, err)
	}

	var count int64
	models.DB.Model(&models.Category{}).Where("business_id = ?", business.ID).Count(&count)
	if count > 0 {
		stdLog.Printf("business %q already has a menu, nothing to do", slug)
		return
	}

	if err := models.DB.Transaction(func(tx *gorm.DB) error {
		return seedMenu(tx, business.ID)
	}); err != nil {
		stdLog.Fatalf("seeding failed: %v", err)
	}
	stdLog.Printf("seeded demo menu for business %q", slug)
}

func seedMenu(tx *gorm.DB, businessID uint) error {
	mains := models.Category{BusinessID: businessID, Name: "Ana Yemekler", SortOrder: 1, IsActive: true}
	drinks := models.Category{BusinessID: businessID, Name: "Icecekler", SortOrder: 2, IsActive: true}
	for _, category := range []*models.Category{&mains, &drinks} {
		if err := tx.Create(category).Error; err != nil {
			return err
		}
	}

	products := []models.Product{
		{
			BusinessID:  businessID,
			CategoryID:  mains.ID,
			Name:        "Adana Durum",
			Description: "Acili, lavas ekmeginde",
			Price:       models.NewMoneyFromFloat(185),
			SizeOptions: models.JSONArray{
				{"name": "Tek", "price_delta": 0},
				{"name": "Bucuk", "price_delta": 60},
			},
			SortOrder:   1,
			IsAvailable: true,
		},
		{
			BusinessID: businessID,
			CategoryID: mains.ID,
			Name:       "Tavuk Pilav",
			Price:      models.NewMoneyFromFloat(120),
			ExtraOptions: models.JSONArray{
				{"name": "Nohut", "price_delta": 10},
				{"name": "Tursu", "price_delta": 10},
			},
			SortOrder:   2,
			IsAvailable: true,
		},
		{
			BusinessID:  businessID,
			CategoryID:  drinks.ID,
			Name:        "Ayran",
			Price:       models.NewMoneyFromFloat(25),
			SortOrder:   1,
			IsAvailable: true,
		},
	}
	for i := range products {
		if err := tx.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	tables := []models.DiningTable{
		{BusinessID: businessID, Label: "Masa 1", IsActive: true},
		{BusinessID: businessID, Label: "Masa 2", IsActive: true},
		{BusinessID: businessID, Label: "Bahce 1", IsActive: true},
	}
	for i := range tables {
		if err := tx.Create(&tables[i]).Error; err != nil {
			return err
		}
	}

	validUntil := time.Now().AddDate(0, 1, 0)
	coupon := models.Coupon{
		BusinessID:     businessID,
		Code:           "HOSGELDIN10",
		Type:           constants.CouponTypePercentage,
		Value:          models.NewMoneyFromFloat(10),
		MinOrderAmount: models.NewMoneyFromFloat(150),
		MaxDiscount:    models.NewMoneyFromFloat(50),
		UsageLimit:     100,
		PerUserLimit:   1,
		ScopeType:      constants.ScopeTypeAll,
		ValidUntil:     &validUntil,
		IsActive:       true,
		IsPublic:       true,
		FirstOrderOnly: true,
	}
	return tx.Create(&coupon).Error
}
