package admin

import (
	handlershared "github.com/tikprofil/tikprofil-api/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, key, invalidKey, typeInvalidKey)
}

func getStaffID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, "staff_id", "error.unauthorized", "error.unauthorized")
}

func getBusinessID(c *gin.Context) (uint, bool) {
	return getContextUintWithKeys(c, "business_id", "error.unauthorized", "error.unauthorized")
}
