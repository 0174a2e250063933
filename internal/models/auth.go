package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserRole represents the roles recognised by the enterprise access check.
type UserRole string

const (
	RoleStaff              UserRole = "STAFF"
	RoleEnterpriseOperator UserRole = "ENTERPRISE_OPERATOR"
	RoleEnterpriseAdmin    UserRole = "ENTERPRISE_ADMIN"
)

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID        string   `json:"user_id"`
	Email         string   `json:"email"`
	Role          UserRole `json:"role"`
	EnterpriseIDs []string `json:"enterprise_ids,omitempty"`
	jwt.RegisteredClaims
}

// CanAccessEnterprise reports whether the principal may read data for enterpriseID.
func (c *JWTClaims) CanAccessEnterprise(enterpriseID string) bool {
	if c == nil || enterpriseID == "" {
		return false
	}
	switch c.Role {
	case RoleStaff, RoleEnterpriseOperator:
		return true
	case RoleEnterpriseAdmin:
		for _, id := range c.EnterpriseIDs {
			if NormalizeEnterpriseID(id) == NormalizeEnterpriseID(enterpriseID) {
				return true
			}
		}
	}
	return false
}
