package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newCouponRepoTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestCouponGetByCodeNormalizesCase(t *testing.T) {
	db := newCouponRepoTestDB(t, "coupon_repo_case")
	repo := NewCouponRepository(db)

	coupon := models.Coupon{BusinessID: 1, Code: "SAVE10", Type: constants.CouponTypeFixed, IsActive: true}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	found, err := repo.GetByCode(1, "  save10 ")
	if err != nil {
		t.Fatalf("GetByCode error: %v", err)
	}
	if found == nil || found.ID != coupon.ID {
		t.Fatalf("expected coupon %d, got %+v", coupon.ID, found)
	}

	missing, err := repo.GetByCode(1, "nope")
	if err != nil {
		t.Fatalf("GetByCode error: %v", err)
	}
	if missing != nil {
		t.Fatalf("unknown code should return nil, got %+v", missing)
	}
}

func TestCouponRedeemIncrementStopsAtLimit(t *testing.T) {
	db := newCouponRepoTestDB(t, "coupon_repo_redeem")
	repo := NewCouponRepository(db)

	coupon := models.Coupon{BusinessID: 1, Code: "CAP2", Type: constants.CouponTypeFixed, UsageLimit: 2, IsActive: true}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		ok, err := repo.RedeemIncrement(coupon.ID)
		if err != nil {
			t.Fatalf("RedeemIncrement error: %v", err)
		}
		if !ok {
			t.Fatalf("redemption %d should succeed", i+1)
		}
	}
	ok, err := repo.RedeemIncrement(coupon.ID)
	if err != nil {
		t.Fatalf("RedeemIncrement error: %v", err)
	}
	if ok {
		t.Fatalf("redemption past the limit should fail")
	}

	var fresh models.Coupon
	if err := db.First(&fresh, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if fresh.UsedCount != 2 {
		t.Fatalf("used count want 2 got %d", fresh.UsedCount)
	}
}

func TestCouponRedeemIncrementUnlimited(t *testing.T) {
	db := newCouponRepoTestDB(t, "coupon_repo_unlimited")
	repo := NewCouponRepository(db)

	// usage_limit 0 means no global cap.
	coupon := models.Coupon{BusinessID: 1, Code: "ACIK", Type: constants.CouponTypeFixed, UsedCount: 100, IsActive: true}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	ok, err := repo.RedeemIncrement(coupon.ID)
	if err != nil {
		t.Fatalf("RedeemIncrement error: %v", err)
	}
	if !ok {
		t.Fatalf("unlimited coupon should always redeem")
	}
}

func TestCouponReleaseDecrementClampsAtZero(t *testing.T) {
	db := newCouponRepoTestDB(t, "coupon_repo_release")
	repo := NewCouponRepository(db)

	coupon := models.Coupon{BusinessID: 1, Code: "GERI", Type: constants.CouponTypeFixed, UsedCount: 1, IsActive: true}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	if err := repo.ReleaseDecrement(coupon.ID); err != nil {
		t.Fatalf("ReleaseDecrement error: %v", err)
	}
	if err := repo.ReleaseDecrement(coupon.ID); err != nil {
		t.Fatalf("ReleaseDecrement at zero error: %v", err)
	}

	var fresh models.Coupon
	if err := db.First(&fresh, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if fresh.UsedCount != 0 {
		t.Fatalf("used count want 0 got %d", fresh.UsedCount)
	}
}
