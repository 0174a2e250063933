package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/enterprise-data-api/internal/middleware"
)

// Router holds the handlers mounted by Register.
type Router struct {
	Enrollments *EnrollmentHandler
	Learners    *LearnerHandler
	Offers      *OfferHandler
	Insights    *InsightsHandler
	Metrics     *MetricsHandler
}

// Register mounts the ops endpoints at the root and the enterprise API under
// prefix. authenticate must attach claims for middleware.EnterpriseAccess.
func (rt Router) Register(r *gin.Engine, prefix string, authenticate gin.HandlerFunc) {
	r.GET("/health", rt.Metrics.Health)
	r.GET("/ready", rt.Metrics.Ready)
	r.GET("/metrics", rt.Metrics.Prometheus)

	api := r.Group(prefix)
	api.Use(middleware.WithResponseMeta())

	v1 := api.Group("/v1/enterprise/:"+middleware.EnterpriseParam, authenticate, middleware.EnterpriseAccess())
	v1.GET("/enrollments/", rt.Enrollments.List)
	v1.GET("/enrollments/overview/", rt.Enrollments.Overview)
	v1.GET("/learners/", rt.Learners.List)
	v1.GET("/learners/completed_courses/", rt.Learners.CompletedCourses)
	v1.GET("/offers/", rt.Offers.List)
	v1.GET("/offers/:offer_id/", rt.Offers.Get)
	v1.GET("/insights/", rt.Insights.Get)

	v0 := api.Group("/v0/enterprise/:"+middleware.EnterpriseParam, authenticate, middleware.EnterpriseAccess())
	v0.GET("/enrollments/", rt.Enrollments.LegacyList)
	v0.GET("/enrollments/overview/", rt.Enrollments.LegacyOverview)
}
