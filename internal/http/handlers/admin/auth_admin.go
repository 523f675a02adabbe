package admin

import (
	"errors"

	"github.com/tikprofil/tikprofil-api/internal/http/response"
	"github.com/tikprofil/tikprofil-api/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the staff login payload.
type LoginRequest struct {
	Email          string                       `json:"email" binding:"required"`
	Password       string                       `json:"password" binding:"required"`
	CaptchaPayload service.CaptchaVerifyPayload `json:"captcha_payload"`
}

// LoginResponse carries the issued token and the staff identity.
type LoginResponse struct {
	Token     string                 `json:"token"`
	Staff     map[string]interface{} `json:"staff"`
	ExpiresAt string                 `json:"expires_at"`
}

// Login authenticates a staff member.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if h.CaptchaService != nil {
		if captchaErr := h.CaptchaService.Verify(req.CaptchaPayload); captchaErr != nil {
			switch {
			case errors.Is(captchaErr, service.ErrCaptchaRequired):
				respondError(c, response.CodeBadRequest, "error.captcha_required", nil)
			case errors.Is(captchaErr, service.ErrCaptchaInvalid):
				respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
			default:
				respondError(c, response.CodeInternal, "error.internal", captchaErr)
			}
			return
		}
	}

	staff, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLoginFailed):
			respondError(c, response.CodeUnauthorized, "error.login_failed", nil)
		case errors.Is(err, service.ErrAccountDisabled):
			respondError(c, response.CodeForbidden, "error.account_disabled", nil)
		default:
			respondError(c, response.CodeInternal, "error.login_failed", err)
		}
		return
	}

	response.Success(c, LoginResponse{
		Token: token,
		Staff: map[string]interface{}{
			"id":          staff.ID,
			"business_id": staff.BusinessID,
			"email":       staff.Email,
			"name":        staff.Name,
			"role":        staff.Role,
		},
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetCaptcha serves an image captcha challenge for the login form.
func (h *Handler) GetCaptcha(c *gin.Context) {
	if h.CaptchaService == nil || !h.CaptchaService.Enabled() {
		response.Success(c, gin.H{"enabled": false})
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{
		"enabled":      true,
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}

// UpdatePasswordRequest is the change-password payload.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UpdatePassword changes the password of the logged-in staff member and
// revokes their outstanding tokens.
func (h *Handler) UpdatePassword(c *gin.Context) {
	staffID, ok := getStaffID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(staffID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrLoginFailed):
			respondError(c, response.CodeBadRequest, "error.login_failed", nil)
		case errors.Is(err, service.ErrStaffNotFound):
			respondError(c, response.CodeNotFound, "error.not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}

	response.Success(c, nil)
}
