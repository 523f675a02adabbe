package service

import (
	"errors"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/config"
	"github.com/tikprofil/tikprofil-api/internal/models"
	"github.com/tikprofil/tikprofil-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles staff authentication.
type AuthService struct {
	cfg       *config.Config
	staffRepo repository.StaffRepository
}

// NewAuthService creates an auth service.
func NewAuthService(cfg *config.Config, staffRepo repository.StaffRepository) *AuthService {
	return &AuthService{
		cfg:       cfg,
		staffRepo: staffRepo,
	}
}

// HashPassword hashes a password with bcrypt.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a password against its hash.
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// JWTClaims is the staff token payload. BusinessID scopes every admin
// request to the staff member's tenant.
type JWTClaims struct {
	StaffID      uint   `json:"staff_id"`
	BusinessID   uint   `json:"business_id"`
	Role         string `json:"role"`
	TokenVersion int    `json:"token_version"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a staff token.
func (s *AuthService) GenerateJWT(staff *models.Staff) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.JWT.ExpireHours) * time.Hour)

	claims := JWTClaims{
		StaffID:      staff.ID,
		BusinessID:   staff.BusinessID,
		Role:         staff.Role,
		TokenVersion: staff.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseJWT parses and validates a staff token. Only HS256 is accepted.
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// Login authenticates a staff member and issues a token.
func (s *AuthService) Login(email, password string) (*models.Staff, string, time.Time, error) {
	staff, err := s.staffRepo.GetByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if staff == nil {
		return nil, "", time.Time{}, ErrLoginFailed
	}
	if !staff.IsActive {
		return nil, "", time.Time{}, ErrAccountDisabled
	}

	if err := s.VerifyPassword(staff.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrLoginFailed
	}

	token, expiresAt, err := s.GenerateJWT(staff)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if err := s.staffRepo.TouchLastLogin(staff.ID, time.Now()); err != nil {
		return nil, "", time.Time{}, err
	}

	return staff, token, expiresAt, nil
}

// ChangePassword updates a staff password and revokes outstanding tokens.
func (s *AuthService) ChangePassword(staffID uint, oldPassword, newPassword string) error {
	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return err
	}
	if staff == nil {
		return ErrStaffNotFound
	}

	if err := s.VerifyPassword(staff.PasswordHash, oldPassword); err != nil {
		return ErrLoginFailed
	}

	hashedPassword, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}

	staff.PasswordHash = hashedPassword
	if err := s.staffRepo.Update(staff); err != nil {
		return err
	}
	return s.staffRepo.BumpTokenVersion(staffID)
}

// ResolveStaff loads the staff row behind a parsed token and verifies the
// revocation state.
func (s *AuthService) ResolveStaff(claims *JWTClaims) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByID(claims.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	if !staff.IsActive {
		return nil, ErrAccountDisabled
	}
	if staff.TokenVersion != claims.TokenVersion {
		return nil, ErrLoginFailed
	}
	if staff.TokenInvalidBefore != nil && claims.IssuedAt != nil &&
		claims.IssuedAt.Time.Before(*staff.TokenInvalidBefore) {
		return nil, ErrLoginFailed
	}
	return staff, nil
}
