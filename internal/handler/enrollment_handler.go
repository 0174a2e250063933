package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/enterprise-data-api/internal/dto"
	"github.com/noah-isme/enterprise-data-api/internal/middleware"
	"github.com/noah-isme/enterprise-data-api/internal/models"
	"github.com/noah-isme/enterprise-data-api/internal/query"
	"github.com/noah-isme/enterprise-data-api/internal/service"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
	"github.com/noah-isme/enterprise-data-api/pkg/export"
	"github.com/noah-isme/enterprise-data-api/pkg/response"
)

type enrollmentService interface {
	List(ctx context.Context, req service.EnrollmentListRequest) (*service.EnrollmentList, error)
	Overview(ctx context.Context, enterpriseID string, params query.EnrollmentParams) (*dto.EnrollmentOverview, error)
	LegacyList(ctx context.Context, enterpriseID string, page models.PageRequest) (*service.EnrollmentList, error)
	LegacyOverview(ctx context.Context, enterpriseID string) (*dto.LegacyEnrollmentOverview, error)
}

// EnrollmentHandler exposes enrollment endpoints.
type EnrollmentHandler struct {
	enrollments enrollmentService
	paging      Paging
	csv         *export.CSVExporter
	logger      *zap.Logger
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentService, paging Paging, logger *zap.Logger) *EnrollmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentHandler{enrollments: enrollments, paging: paging, csv: export.NewCSVExporter(), logger: logger}
}

// List godoc
// @Summary List enterprise enrollments
// @Tags Enrollments
// @Produce json
// @Produce text/csv
// @Param enterprise_id path string true "Enterprise customer UUID"
// @Param passed_date query string false "last_week"
// @Param learner_activity query string false "active_past_week, inactive_past_week or inactive_past_month"
// @Param search query string false "Email contains"
// @Param search_all query string false "Email or course title contains"
// @Param search_course query string false "Course title contains"
// @Param search_start_date query string false "Course start date (YYYY-MM-DD)"
// @Param offer_id query string false "Offer id"
// @Param budget_id query string false "Budget id"
// @Param ignore_null_course_list_price query string false "Exclude rows without a list price"
// @Param course_product_line query string false "Product line"
// @Param is_subsidy query bool false "Subsidy flag"
// @Param ordering query string false "Field name, prefix with - for descending"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Param no_page query string false "Disable paging"
// @Param format query string false "json or csv"
// @Success 200 {object} response.Envelope
// @Router /v1/enterprise/{enterprise_id}/enrollments/ [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	var q dto.EnrollmentQuery
	if err := bindQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}
	page, err := pageRequest(c, q.PageQuery, h.paging)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.enrollments.List(c.Request.Context(), service.EnrollmentListRequest{
		EnterpriseID: c.Param(middleware.EnterpriseParam),
		Params:       q.Params(),
		Ordering:     service.ParseEnrollmentOrdering(q.Ordering),
		Page:         page,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, result.CacheHit)

	if q.Format == "csv" {
		h.writeCSV(c, result.Enrollments)
		return
	}
	response.JSON(c, http.StatusOK, result.Enrollments, result.Pagination, middleware.ExtractMeta(c))
}

func (h *EnrollmentHandler) writeCSV(c *gin.Context, enrollments []models.Enrollment) {
	rows := make([]map[string]string, len(enrollments))
	for i := range enrollments {
		rows[i] = enrollments[i].CSVRecord()
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="enrollments.csv"`)
	c.Status(http.StatusOK)
	if err := h.csv.Write(c.Writer, export.Dataset{Headers: models.EnrollmentCSVHeader, Rows: rows}); err != nil {
		h.logger.Error("enrollment csv export failed",
			zap.String("enterprise_id", c.Param(middleware.EnterpriseParam)), zap.Error(err))
	}
}

// Overview godoc
// @Summary Enrollment overview
// @Tags Enrollments
// @Produce json
// @Param enterprise_id path string true "Enterprise customer UUID"
// @Success 200 {object} response.Envelope
// @Router /v1/enterprise/{enterprise_id}/enrollments/overview/ [get]
func (h *EnrollmentHandler) Overview(c *gin.Context) {
	var q dto.EnrollmentQuery
	if err := bindQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}
	overview, err := h.enrollments.Overview(c.Request.Context(), c.Param(middleware.EnterpriseParam), q.Params())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}

// LegacyList godoc
// @Summary List enterprise enrollments (v0)
// @Tags Enrollments
// @Produce json
// @Param enterprise_id path string true "Enterprise customer UUID"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v0/enterprise/{enterprise_id}/enrollments/ [get]
func (h *EnrollmentHandler) LegacyList(c *gin.Context) {
	var q dto.PageQuery
	if err := bindQuery(c, &q); err != nil {
		response.Error(c, err)
		return
	}
	page, err := pageRequest(c, q, h.paging)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.enrollments.LegacyList(c.Request.Context(), c.Param(middleware.EnterpriseParam), page)
	if err != nil {
		h.logNotFound(c, err)
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result.Enrollments, result.Pagination)
}

// LegacyOverview godoc
// @Summary Enrollment overview (v0)
// @Tags Enrollments
// @Produce json
// @Param enterprise_id path string true "Enterprise customer UUID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /v0/enterprise/{enterprise_id}/enrollments/overview/ [get]
func (h *EnrollmentHandler) LegacyOverview(c *gin.Context) {
	overview, err := h.enrollments.LegacyOverview(c.Request.Context(), c.Param(middleware.EnterpriseParam))
	if err != nil {
		h.logNotFound(c, err)
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}

func (h *EnrollmentHandler) logNotFound(c *gin.Context, err error) {
	if appErrors.FromError(err).Code != appErrors.ErrNotFound.Code {
		return
	}
	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("enterprise_id", c.Param(middleware.EnterpriseParam)),
	}
	h.logger.Warn("no enrollments for enterprise", append(fields, principalFields(c)...)...)
}
