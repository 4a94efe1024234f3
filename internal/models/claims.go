package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	PermissionCalculationRead  = "calculation:read"
	PermissionCalculationWrite = "calculation:write"
	PermissionTariffRead       = "tariff:read"
	PermissionInvoiceWrite     = "invoice:write"
)

// UserClaims are the claims carried in tokens issued by the office's auth
// service. This service only verifies them, it never issues tokens.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID      uint     `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
