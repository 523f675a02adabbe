package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/config"
	"github.com/tikprofil/tikprofil-api/internal/constants"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthTestService(t *testing.T, name string) (*AuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Staff{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-signing-tokens"
	cfg.JWT.ExpireHours = 24
	return NewAuthService(cfg, repository.NewStaffRepository(db)), db
}

func createTestStaff(t *testing.T, db *gorm.DB, email, password string) models.Staff {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	staff := models.Staff{
		BusinessID:   1,
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Test",
		Role:         constants.StaffRoleOwner,
		IsActive:     true,
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	return staff
}

func TestLoginAndParseJWT(t *testing.T) {
	svc, db := newAuthTestService(t, "auth_login")
	staff := createTestStaff(t, db, "owner@test.local", "parola123")

	got, token, expiresAt, err := svc.Login("owner@test.local", "parola123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if got.ID != staff.ID {
		t.Fatalf("staff id want %d got %d", staff.ID, got.ID)
	}
	if token == "" || !expiresAt.After(time.Now()) {
		t.Fatalf("expected a valid token with future expiry")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if claims.StaffID != staff.ID || claims.BusinessID != staff.BusinessID || claims.Role != constants.StaffRoleOwner {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	if _, err := svc.ResolveStaff(claims); err != nil {
		t.Fatalf("ResolveStaff error: %v", err)
	}
}

func TestLoginRejections(t *testing.T) {
	svc, db := newAuthTestService(t, "auth_rejections")
	staff := createTestStaff(t, db, "owner@test.local", "parola123")

	if _, _, _, err := svc.Login("owner@test.local", "yanlis"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("expected login failure for wrong password, got: %v", err)
	}
	if _, _, _, err := svc.Login("yok@test.local", "parola123"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("expected login failure for unknown email, got: %v", err)
	}

	if err := db.Model(&models.Staff{}).Where("id = ?", staff.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate staff failed: %v", err)
	}
	if _, _, _, err := svc.Login("owner@test.local", "parola123"); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected disabled account rejection, got: %v", err)
	}
}

func TestChangePasswordRevokesTokens(t *testing.T) {
	svc, db := newAuthTestService(t, "auth_change_password")
	staff := createTestStaff(t, db, "owner@test.local", "parola123")

	_, token, _, err := svc.Login("owner@test.local", "parola123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}

	if err := svc.ChangePassword(staff.ID, "yanlis", "yeni12345"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("expected rejection for wrong old password, got: %v", err)
	}
	if err := svc.ChangePassword(staff.ID, "parola123", "yeni12345"); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}

	// The old token carries a stale version and no longer resolves.
	if _, err := svc.ResolveStaff(claims); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("expected stale token rejection, got: %v", err)
	}

	if _, _, _, err := svc.Login("owner@test.local", "yeni12345"); err != nil {
		t.Fatalf("Login with new password error: %v", err)
	}
}

func TestParseJWTRejectsForgedToken(t *testing.T) {
	svc, db := newAuthTestService(t, "auth_forged")
	createTestStaff(t, db, "owner@test.local", "parola123")

	_, token, _, err := svc.Login("owner@test.local", "parola123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	other, _ := newAuthTestService(t, "auth_forged_other")
	other.cfg.JWT.SecretKey = "a-completely-different-secret-key"
	if _, err := other.ParseJWT(token); err == nil {
		t.Fatalf("token signed with another secret must not parse")
	}
}
