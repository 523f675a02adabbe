package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/models"
)

const businessSettingCacheTTL = 5 * time.Minute

func businessSettingKey(businessID uint) string {
	return fmt.Sprintf("business:%d:setting", businessID)
}

// GetBusinessSetting reads a cached settings row.
func GetBusinessSetting(ctx context.Context, businessID uint) (*models.BusinessSetting, bool, error) {
	if businessID == 0 {
		return nil, false, nil
	}
	var setting models.BusinessSetting
	hit, err := GetJSON(ctx, businessSettingKey(businessID), &setting)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &setting, true, nil
}

// SetBusinessSetting caches a settings row.
func SetBusinessSetting(ctx context.Context, setting *models.BusinessSetting) error {
	if setting == nil || setting.BusinessID == 0 {
		return nil
	}
	return SetJSON(ctx, businessSettingKey(setting.BusinessID), setting, businessSettingCacheTTL)
}

// DelBusinessSetting drops a cached settings row after an admin update.
func DelBusinessSetting(ctx context.Context, businessID uint) error {
	if businessID == 0 {
		return nil
	}
	return Del(ctx, businessSettingKey(businessID))
}
