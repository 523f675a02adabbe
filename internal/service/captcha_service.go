package service

import (
	"strings"
	"sync"
	"time"

	"github.com/tikprofil/tikprofil-api/internal/config"
	"github.com/tikprofil/tikprofil-api/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaVerifyPayload is the captcha part of a login request.
type CaptchaVerifyPayload struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CaptchaImageChallenge is a generated image challenge.
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService generates and verifies image captchas for the staff login.
// With provider "none" every Verify call passes.
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu         sync.Mutex
	imageStore base64Captcha.Store
}

// NewCaptchaService creates a captcha service.
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Enabled reports whether login requests must carry a captcha.
func (s *CaptchaService) Enabled() bool {
	return s != nil && strings.TrimSpace(s.cfg.Provider) == constants.CaptchaProviderImage
}

// GenerateImageChallenge generates an image challenge.
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if !s.Enabled() {
		return nil, ErrCaptchaRequired
	}
	store := s.ensureImageStore()
	driver := base64Captcha.NewDriverString(
		s.cfg.Image.Height,
		s.cfg.Image.Width,
		s.cfg.Image.NoiseCount,
		s.cfg.Image.ShowLine,
		s.cfg.Image.Length,
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, store)
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify checks a captcha answer. A used id cannot be replayed.
func (s *CaptchaService) Verify(payload CaptchaVerifyPayload) error {
	if !s.Enabled() {
		return nil
	}
	captchaID := strings.TrimSpace(payload.CaptchaID)
	captchaCode := strings.TrimSpace(payload.CaptchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	if !s.ensureImageStore().Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureImageStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.imageStore == nil {
		maxStore := s.cfg.Image.MaxStore
		if maxStore <= 0 {
			maxStore = 10240
		}
		expire := s.cfg.Image.ExpireSeconds
		if expire <= 0 {
			expire = 300
		}
		s.imageStore = base64Captcha.NewMemoryStore(maxStore, time.Duration(expire)*time.Second)
	}
	return s.imageStore
}
