package middleware

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
	"github.com/noah-isme/enterprise-data-api/pkg/response"
)

// EnterpriseParam is the route parameter naming the enterprise being read.
const EnterpriseParam = "enterprise_id"

// EnterpriseAccess rejects principals that may not read the enterprise in
// the route. It must run after JWT.
func EnterpriseAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		enterpriseID := c.Param(EnterpriseParam)
		if !claims.CanAccessEnterprise(enterpriseID) {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "no access to enterprise "+enterpriseID))
			c.Abort()
			return
		}

		c.Next()
	}
}
